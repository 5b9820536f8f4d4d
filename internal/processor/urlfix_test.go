package processor

import "testing"

func TestURLFixerFix(t *testing.T) {
	f := NewURLFixer(DefaultSourceBaseURLs())
	cases := []struct {
		url, source, want string
	}{
		{"https://example.edu/a", "Western University", "https://example.edu/a"},
		{"http://example.edu/a", "Unknown", "http://example.edu/a"},
		{"/news/a", "Western University", "https://www.westernu.edu/news/a"},
		{"/news/a", "Lincoln Memorial University", "/news/a"},
		{"/news/a", "Example University", "/news/a"},
		{"news/a", "Western University", "news/a"},
		{"", "Western University", ""},
	}
	for _, c := range cases {
		if got := f.Fix(c.url, c.source); got != c.want {
			t.Fatalf("Fix(%q, %q) = %q, want %q", c.url, c.source, got, c.want)
		}
	}
}

func TestNewURLFixerCopiesTable(t *testing.T) {
	bases := map[string]string{"A": "https://a.edu"}
	f := NewURLFixer(bases)
	bases["A"] = "https://changed.edu"
	if got := f.Fix("/x", "A"); got != "https://a.edu/x" {
		t.Fatalf("Fix after caller mutation = %q", got)
	}
}

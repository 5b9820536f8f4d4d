package classifier

import "testing"

func TestEmojiFirstMatchWins(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Veterinary School Receives $5 Million Gift for Cancer Research", "💰"},
		{"Canine Cardiology Study Published", "🔬"},
		{"Horse Show Results", "🐴"},
		{"Avian Influenza Outbreak Tracked", "🐦"},
		{"Tumor Board Meets Weekly", "🎗️"},
		{"Campus Parking Update", DefaultEmoji},
		{"", DefaultEmoji},
	}
	for _, c := range cases {
		if got := Emoji(c.title, ""); got != c.want {
			t.Fatalf("Emoji(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestEmojiUsesSummary(t *testing.T) {
	if got := Emoji("Campus Parking Update", "shuttle to the equine barn"); got != "🐴" {
		t.Fatalf("Emoji with summary = %q, want %q", got, "🐴")
	}
}

func TestEmojiIsTotalAndClosed(t *testing.T) {
	allowed := make(map[string]bool)
	for _, e := range Emojis() {
		allowed[e] = true
	}
	inputs := []string{
		"", " ", "x", "DOG", "k9 unit", "$100 raised", "兽医", "\n\t",
		"Veterinary cardiology conference features championship-winning service dogs",
	}
	for _, in := range inputs {
		a := Emoji(in, "")
		b := Emoji(in, "")
		if a != b {
			t.Fatalf("Emoji(%q) not deterministic: %q vs %q", in, a, b)
		}
		if !allowed[a] {
			t.Fatalf("Emoji(%q) = %q, not in closed set", in, a)
		}
	}
}

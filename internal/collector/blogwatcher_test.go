package collector

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBlogwatcherFetcherParsesStdout(t *testing.T) {
	f := &BlogwatcherFetcher{
		Command: "sh",
		Args:    []string{"-c", `printf '[1] [unread] Avian Influenza Outbreak Tracked\nBlog: Example University\nURL: /news/flu\n'`},
	}
	recs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Title != "Avian Influenza Outbreak Tracked" || recs[0].URL != "/news/flu" {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestBlogwatcherFetcherNonZeroExit(t *testing.T) {
	f := &BlogwatcherFetcher{
		Command: "sh",
		Args:    []string{"-c", "echo 'database locked' >&2; exit 3"},
	}
	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatalf("expected error for nonzero exit")
	}
	var aggErr *AggregatorError
	if !errors.As(err, &aggErr) {
		t.Fatalf("expected *AggregatorError, got %T: %v", err, err)
	}
	if aggErr.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", aggErr.ExitCode)
	}
	if !strings.Contains(err.Error(), "database locked") {
		t.Fatalf("error should surface stderr: %v", err)
	}
}

func TestBlogwatcherFetcherDefaults(t *testing.T) {
	f := &BlogwatcherFetcher{}
	if f.Name() != "blogwatcher" {
		t.Fatalf("Name() = %q, want %q", f.Name(), "blogwatcher")
	}
	if got := strings.Join(f.args(), " "); got != "articles --all" {
		t.Fatalf("args() = %q, want %q", got, "articles --all")
	}
}

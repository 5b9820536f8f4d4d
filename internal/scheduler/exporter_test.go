package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LJTian/VetFeed/internal/collector"
	"github.com/LJTian/VetFeed/internal/processor"
	"github.com/LJTian/VetFeed/internal/storage"
)

type stubFetcher struct {
	records []collector.ArticleRecord
	err     error
	calls   int
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) Fetch(ctx context.Context) ([]collector.ArticleRecord, error) {
	s.calls++
	return s.records, s.err
}

func newTestExporter(t *testing.T, f collector.Fetcher) (*Exporter, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "public", "news.json")
	store, err := storage.NewStore("", "")
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	return NewExporter(f, processor.NewFeedProcessor(nil), store, path), path
}

func TestExporterRunOnceWritesFeed(t *testing.T) {
	f := &stubFetcher{records: []collector.ArticleRecord{
		{Title: "Equine Hospital Opens New Wing", Source: "Western University", URL: "/news/equine"},
		{Title: "Men's Basketball Wins Championship", Source: "Western University"},
		{Title: "Read more", Source: "Western University"},
	}}
	e, path := newTestExporter(t, f)

	rep, err := e.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce error: %v", err)
	}
	if rep.Stats.Exported != 1 || rep.Stats.OffTopic != 1 || rep.Stats.Junk != 1 {
		t.Fatalf("unexpected stats: %+v", rep.Stats)
	}
	if rep.OutputPath != path || e.OutputPath() != path {
		t.Fatalf("OutputPath = %q, want %q", rep.OutputPath, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	var feed processor.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].URL != "https://www.westernu.edu/news/equine" {
		t.Fatalf("unexpected feed: %+v", feed)
	}
	if feed.LastUpdated == "" {
		t.Fatalf("lastUpdated should be set")
	}
}

func TestExporterAggregatorFailureKeepsPreviousFile(t *testing.T) {
	aggErr := &collector.AggregatorError{Command: "blogwatcher", ExitCode: 1, Stderr: "boom", Err: errors.New("exit status 1")}
	f := &stubFetcher{err: aggErr}
	e, path := newTestExporter(t, f)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	_, err := e.RunOnce(context.Background())
	var got *collector.AggregatorError
	if !errors.As(err, &got) {
		t.Fatalf("expected AggregatorError, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "previous" {
		t.Fatalf("previous file was modified: %q", data)
	}
}

func TestSchedulerNewRejectsBadSpec(t *testing.T) {
	e, _ := newTestExporter(t, &stubFetcher{})
	if _, err := New("not a cron spec", e); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
	s, err := New("0 * * * *", e)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s.RunOnce()
}

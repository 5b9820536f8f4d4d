package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewStoreWithoutBackends(t *testing.T) {
	s, err := NewStore("", "")
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	if s.DB != nil || s.Redis != nil {
		t.Fatalf("expected no backends, got %+v", s)
	}

	if err := s.SaveRun(&ExportRun{}); err != nil {
		t.Fatalf("SaveRun without DB should be a no-op, got %v", err)
	}
	if _, err := s.ListRuns(10); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("ListRuns error = %v, want ErrNoDatabase", err)
	}
	if err := s.CacheFeed(context.Background(), []byte("{}")); err != nil {
		t.Fatalf("CacheFeed without redis should be a no-op, got %v", err)
	}
	if _, ok := s.CachedFeed(context.Background()); ok {
		t.Fatalf("CachedFeed without redis should miss")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	if err := s.SaveRun(&ExportRun{}); err != nil {
		t.Fatalf("SaveRun on nil store = %v", err)
	}
	if _, ok := s.CachedFeed(context.Background()); ok {
		t.Fatalf("CachedFeed on nil store should miss")
	}
}

func TestNewExportRun(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	finished := started.Add(time.Second)
	stats := map[string]any{"exported": 3}

	ok := NewExportRun("blogwatcher", started, finished, 3, stats, "/tmp/news.json", nil)
	if ok.ID == "" || ok.Error != "" || ok.Items != 3 || ok.Stats["exported"] != 3 {
		t.Fatalf("unexpected run: %+v", ok)
	}

	long := errors.New(strings.Repeat("错", 2500))
	failed := NewExportRun("blogwatcher", started, finished, 0, nil, "/tmp/news.json", long)
	if n := len([]rune(failed.Error)); n != 2000 {
		t.Fatalf("error text length = %d, want 2000", n)
	}
	if failed.ID == ok.ID {
		t.Fatalf("run IDs should be unique")
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/LJTian/VetFeed/internal/collector"
	"github.com/LJTian/VetFeed/internal/config"
	"github.com/LJTian/VetFeed/internal/processor"
	"github.com/LJTian/VetFeed/internal/report"
	"github.com/LJTian/VetFeed/internal/scheduler"
	"github.com/LJTian/VetFeed/internal/storage"
)

// 只执行一次导出的命令行入口：调用 blogwatcher，生成挂件用的 news.json
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	fetcher := &collector.BlogwatcherFetcher{Command: cfg.AggregatorCmd}
	p := processor.NewFeedProcessor(processor.NewURLFixer(processor.DefaultSourceBaseURLs()))
	exporter := scheduler.NewExporter(fetcher, p, store, cfg.OutputPath)

	rep, err := exporter.RunOnce(context.Background())
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	report.Print(os.Stdout, rep)
}

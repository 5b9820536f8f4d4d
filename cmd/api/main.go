package main

import (
	"log"

	"github.com/LJTian/VetFeed/internal/api"
	"github.com/LJTian/VetFeed/internal/collector"
	"github.com/LJTian/VetFeed/internal/config"
	"github.com/LJTian/VetFeed/internal/processor"
	"github.com/LJTian/VetFeed/internal/scheduler"
	"github.com/LJTian/VetFeed/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	fetcher := &collector.BlogwatcherFetcher{Command: cfg.AggregatorCmd}
	p := processor.NewFeedProcessor(processor.NewURLFixer(processor.DefaultSourceBaseURLs()))
	exporter := scheduler.NewExporter(fetcher, p, store, cfg.OutputPath)

	// 定时重新生成 news.json，每次都是全量重算
	s, err := scheduler.New(cfg.CronSpec, exporter)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()
	defer s.Stop()

	r := gin.Default()
	apiServer := api.NewServer(store, exporter, cfg.OutputPath)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

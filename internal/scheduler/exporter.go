package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/LJTian/VetFeed/internal/collector"
	"github.com/LJTian/VetFeed/internal/processor"
	"github.com/LJTian/VetFeed/internal/report"
	"github.com/LJTian/VetFeed/internal/storage"
)

// Exporter 串起一次完整导出：拉取 → 过滤组装 → 写文件 → 可选的缓存与记录
type Exporter struct {
	fetcher    collector.Fetcher
	processor  *processor.FeedProcessor
	store      *storage.Store
	outputPath string

	// cron 与手动刷新可能同时触发，同一时刻只跑一次
	mu sync.Mutex
}

func NewExporter(fetcher collector.Fetcher, p *processor.FeedProcessor, store *storage.Store, outputPath string) *Exporter {
	return &Exporter{
		fetcher:    fetcher,
		processor:  p,
		store:      store,
		outputPath: outputPath,
	}
}

func (e *Exporter) OutputPath() string {
	return e.outputPath
}

// RunOnce 执行一次导出。聚合器失败时直接返回错误，不写任何文件。
func (e *Exporter) RunOnce(ctx context.Context) (report.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name := e.fetcher.Name()
	rep := report.Report{
		Fetcher:    name,
		OutputPath: e.outputPath,
		StartedAt:  time.Now(),
	}

	records, err := e.fetcher.Fetch(ctx)
	if err != nil {
		rep.FinishedAt = time.Now()
		e.recordRun(rep, err)
		return rep, err
	}

	feed, stats := e.processor.Process(records)
	rep.Stats = stats

	data, err := storage.WriteFeedFile(e.outputPath, feed)
	if err != nil {
		rep.FinishedAt = time.Now()
		e.recordRun(rep, err)
		return rep, err
	}

	if err := e.store.CacheFeed(ctx, data); err != nil {
		log.Printf("warn: cache feed: %v", err)
	}

	rep.FinishedAt = time.Now()
	e.recordRun(rep, nil)
	log.Printf("%s done, parsed=%d exported=%d junk=%d dup=%d in %s",
		name, stats.Parsed, stats.Exported, stats.Junk, stats.Duplicates, rep.Duration())
	return rep, nil
}

func (e *Exporter) recordRun(rep report.Report, runErr error) {
	run := storage.NewExportRun(rep.Fetcher, rep.StartedAt, rep.FinishedAt, rep.Stats.Exported, rep.Stats.Map(), rep.OutputPath, runErr)
	if err := e.store.SaveRun(run); err != nil {
		log.Printf("warn: save export run: %v", err)
	}
}

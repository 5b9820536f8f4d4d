package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron     *cron.Cron
	exporter *Exporter
}

func New(spec string, exporter *Exporter) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		exporter: exporter,
	}

	_, err := c.AddFunc(spec, s.runOnce)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// 启动后稍等再跑首轮，避免和服务启动抢资源
	const startupDelay = 5 * time.Second
	time.AfterFunc(startupDelay, s.runOnce)
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start export job...")
	if _, err := s.exporter.RunOnce(context.Background()); err != nil {
		log.Printf("export job failed: %v", err)
		return
	}
	log.Println("export job done")
}

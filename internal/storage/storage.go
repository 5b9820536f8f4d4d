package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNoDatabase 未配置 POSTGRES_DSN 时查询导出记录返回
var ErrNoDatabase = errors.New("storage: database not configured")

const (
	feedCacheKey = "vetfeed:news.json"
	// 导出器停止后缓存自然过期，HTTP 端回退读文件
	feedCacheTTL = 2 * time.Hour
)

// ExportRun 一次导出的审计记录，只写不读回流水线
type ExportRun struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	Fetcher    string            `gorm:"size:64;index" json:"fetcher"`
	StartedAt  time.Time         `gorm:"index" json:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt"`
	Items      int               `json:"items"`
	Stats      datatypes.JSONMap `gorm:"type:jsonb" json:"stats"`
	OutputPath string            `gorm:"size:1024" json:"outputPath"`
	Error      string            `gorm:"size:2000" json:"error,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewExportRun 组装一条记录；runErr 非空时记录错误文本
func NewExportRun(fetcher string, started, finished time.Time, items int, stats map[string]any, outputPath string, runErr error) *ExportRun {
	r := &ExportRun{
		ID:         uuid.NewString(),
		Fetcher:    fetcher,
		StartedAt:  started,
		FinishedAt: finished,
		Items:      items,
		Stats:      datatypes.JSONMap(stats),
		OutputPath: outputPath,
	}
	if runErr != nil {
		r.Error = truncateRunesDB(runErr.Error(), 2000)
	}
	return r
}

// Store 可选的 postgres（导出记录）与 redis（最新 feed 副本）。
// 两者都可以为 nil，对应的方法变为空操作。
type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	s := &Store{}

	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&ExportRun{}); err != nil {
			return nil, err
		}
		s.DB = db
	}

	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("warn: redis ping failed: %v", err)
		}
		s.Redis = rdb
	}

	return s, nil
}

// SaveRun 写入一条导出记录
func (s *Store) SaveRun(run *ExportRun) error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Create(run).Error
}

// ListRuns 按开始时间倒序返回最近的导出记录
func (s *Store) ListRuns(limit int) ([]ExportRun, error) {
	if s == nil || s.DB == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	var list []ExportRun
	if err := s.DB.Order("started_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CacheFeed 把最新的 news.json 内容写入 redis，供 HTTP 端直接返回
func (s *Store) CacheFeed(ctx context.Context, data []byte) error {
	if s == nil || s.Redis == nil {
		return nil
	}
	return s.Redis.Set(ctx, feedCacheKey, data, feedCacheTTL).Err()
}

// CachedFeed 读取 redis 中的 feed 副本
func (s *Store) CachedFeed(ctx context.Context) ([]byte, bool) {
	if s == nil || s.Redis == nil {
		return nil, false
	}
	bs, err := s.Redis.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return bs, true
}

// truncateRunesDB 按 rune 截断，保证不超过字段长度
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

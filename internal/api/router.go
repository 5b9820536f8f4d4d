package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LJTian/VetFeed/internal/collector"
	"github.com/LJTian/VetFeed/internal/report"
	"github.com/LJTian/VetFeed/internal/storage"
)

// Refresher 触发一次导出
type Refresher interface {
	RunOnce(ctx context.Context) (report.Report, error)
}

type Server struct {
	store     *storage.Store
	refresher Refresher
	feedPath  string
}

func NewServer(store *storage.Store, refresher Refresher, feedPath string) *Server {
	return &Server{store: store, refresher: refresher, feedPath: feedPath}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/news.json", s.feed)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/runs", s.listRuns)
		v1.POST("/refresh", s.refresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// feed 优先返回 redis 中的副本，未命中时读磁盘上的 news.json
func (s *Server) feed(c *gin.Context) {
	if bs, ok := s.store.CachedFeed(c.Request.Context()); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", bs)
		return
	}

	bs, err := storage.ReadFeedFile(s.feedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "not_found",
				"message": "feed has not been exported yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", bs)
}

func (s *Server) listRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	runs, err := s.store.ListRuns(limit)
	if err != nil {
		if errors.Is(err, storage.ErrNoDatabase) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code":    "unavailable",
				"message": "run history is not enabled",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    runs,
	})
}

func (s *Server) refresh(c *gin.Context) {
	rep, err := s.refresher.RunOnce(c.Request.Context())
	if err != nil {
		var aggErr *collector.AggregatorError
		if errors.As(err, &aggErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"code":    "aggregator_failed",
				"message": aggErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": rep.ExportLine(),
		"data":    rep,
	})
}

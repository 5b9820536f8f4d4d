package collector

import "context"

// UnknownSource 是没有 Blog: 行时的默认来源名
const UnknownSource = "Unknown"

// ArticleRecord 聚合器输出中解析出的一条文章
type ArticleRecord struct {
	Title  string
	Source string
	// 可能是站内相对路径，也可能为空
	URL  string
	Date string
}

// Fetcher 抽象文章来源
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]ArticleRecord, error)
}

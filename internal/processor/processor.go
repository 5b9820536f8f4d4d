package processor

import (
	"strings"
	"time"

	"github.com/LJTian/VetFeed/internal/classifier"
	"github.com/LJTian/VetFeed/internal/collector"
)

const (
	DefaultMaxItems = 100
	maxTitleRunes   = 100
	dedupKeyRunes   = 50
)

// LastUpdatedLayout 带微秒和数字时区偏移的 ISO-8601
const LastUpdatedLayout = "2006-01-02T15:04:05.000000-07:00"

// FeedItem 是 news.json 中的一条，字段顺序即输出顺序
type FeedItem struct {
	Emoji   string `json:"emoji"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

// Feed 是写给挂件的完整文档
type Feed struct {
	LastUpdated string     `json:"lastUpdated"`
	Items       []FeedItem `json:"items"`
}

// Stats 单次处理的各类计数
type Stats struct {
	Parsed      int `json:"parsed"`
	Junk        int `json:"junk"`
	OffTopic    int `json:"offTopic"`
	NotRelevant int `json:"notRelevant"`
	Duplicates  int `json:"duplicates"`
	Truncated   int `json:"truncated"`
	Exported    int `json:"exported"`
}

func (s Stats) Map() map[string]any {
	return map[string]any{
		"parsed":      s.Parsed,
		"junk":        s.Junk,
		"offTopic":    s.OffTopic,
		"notRelevant": s.NotRelevant,
		"duplicates":  s.Duplicates,
		"truncated":   s.Truncated,
		"exported":    s.Exported,
	}
}

// FeedProcessor 过滤、去重并组装 feed
type FeedProcessor struct {
	urls     *URLFixer
	maxItems int
	// Now 默认 time.Now，测试时可替换
	Now func() time.Time
}

func NewFeedProcessor(urls *URLFixer) *FeedProcessor {
	if urls == nil {
		urls = NewURLFixer(DefaultSourceBaseURLs())
	}
	return &FeedProcessor{
		urls:     urls,
		maxItems: DefaultMaxItems,
		Now:      time.Now,
	}
}

func (p *FeedProcessor) Process(records []collector.ArticleRecord) (Feed, Stats) {
	stats := Stats{Parsed: len(records)}
	items := make([]FeedItem, 0, len(records))
	seen := make(map[string]struct{})

	for _, r := range records {
		if classifier.IsJunk(r.Title, r.URL) {
			stats.Junk++
			continue
		}
		if classifier.IsOffTopic(r.Title) {
			stats.OffTopic++
			continue
		}
		if !classifier.IsVetHealthRelated(r.Title) {
			stats.NotRelevant++
			continue
		}

		key := dedupKey(r.Title)
		if _, ok := seen[key]; ok {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		items = append(items, FeedItem{
			Emoji:   classifier.Emoji(r.Title, ""),
			Title:   truncateRunes(r.Title, maxTitleRunes),
			Summary: "",
			URL:     p.urls.Fix(r.URL, r.Source),
			Source:  r.Source,
			Date:    r.Date,
		})
	}

	// 按输入顺序截取前 maxItems 条
	if len(items) > p.maxItems {
		stats.Truncated = len(items) - p.maxItems
		items = items[:p.maxItems]
	}
	stats.Exported = len(items)

	return Feed{
		LastUpdated: p.Now().Format(LastUpdatedLayout),
		Items:       items,
	}, stats
}

func dedupKey(title string) string {
	return truncateRunes(strings.ToLower(title), dedupKeyRunes)
}

// truncateRunes 按 rune 截断，不追加省略号
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

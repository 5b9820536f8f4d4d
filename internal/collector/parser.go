package collector

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	indexMarkerRe = regexp.MustCompile(`^\[\d+\]`)
	// 已读/未读标记可选；标记后没有标题时捕获为空
	titleLineRe = regexp.MustCompile(`^\[\d+\]\s+(?:\[(?:read|unread)\](?:\s+|$))?(.*)$`)
)

const (
	blogPrefix      = "Blog:"
	urlPrefix       = "URL:"
	publishedPrefix = "Published:"
)

// pendingRecord 扫描过程中尚未落地的一条记录
type pendingRecord struct {
	rec       ArticleRecord
	hasTitle  bool
	hasSource bool
}

func (p *pendingRecord) flush(out []ArticleRecord) []ArticleRecord {
	if p == nil || !p.hasTitle {
		return out
	}
	if !p.hasSource {
		p.rec.Source = UnknownSource
	}
	return append(out, p.rec)
}

// ParseArticles 将 `blogwatcher articles --all` 的文本输出解析为文章列表。
// 每条文章以 [N] 开头，后面可跟 Blog: / URL: / Published: 属性行，顺序不限。
// 没有标题的条目直接丢弃。
func ParseArticles(text string) []ArticleRecord {
	out := make([]ArticleRecord, 0)
	var cur *pendingRecord

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case indexMarkerRe.MatchString(line):
			out = cur.flush(out)
			cur = &pendingRecord{}
			if m := titleLineRe.FindStringSubmatch(line); m != nil {
				if title := strings.TrimSpace(m[1]); title != "" {
					cur.rec.Title = title
					cur.hasTitle = true
				}
			}
		case cur == nil:
			// 第一个 [N] 之前的内容没有归属
			continue
		case strings.HasPrefix(line, blogPrefix):
			cur.rec.Source = strings.TrimSpace(strings.TrimPrefix(line, blogPrefix))
			cur.hasSource = true
		case strings.HasPrefix(line, urlPrefix):
			cur.rec.URL = strings.TrimSpace(strings.TrimPrefix(line, urlPrefix))
		case strings.HasPrefix(line, publishedPrefix):
			cur.rec.Date = strings.TrimSpace(strings.TrimPrefix(line, publishedPrefix))
		}
	}

	return cur.flush(out)
}

// FormatArticles 把记录重新输出为聚合器的文本格式，ParseArticles 可原样读回
func FormatArticles(records []ArticleRecord) string {
	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "[%d] [unread] %s\n", i+1, r.Title)
		if r.Source != UnknownSource {
			fmt.Fprintf(&b, "%s %s\n", blogPrefix, r.Source)
		}
		if r.URL != "" {
			fmt.Fprintf(&b, "%s %s\n", urlPrefix, r.URL)
		}
		if r.Date != "" {
			fmt.Fprintf(&b, "%s %s\n", publishedPrefix, r.Date)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Package report 负责单次导出结果的控制台输出
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LJTian/VetFeed/internal/processor"
)

// Report 一次导出的结果
type Report struct {
	Fetcher    string          `json:"fetcher"`
	Stats      processor.Stats `json:"stats"`
	OutputPath string          `json:"outputPath"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
}

func (r Report) FilterLine() string {
	return fmt.Sprintf("Filtered: %d off-topic, %d not relevant", r.Stats.OffTopic, r.Stats.NotRelevant)
}

func (r Report) ExportLine() string {
	return fmt.Sprintf("Exported %d articles to %s", r.Stats.Exported, r.OutputPath)
}

func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Print 输出两行汇总；w 不是终端时不带颜色
func Print(w io.Writer, r Report) {
	re := lipgloss.NewRenderer(w)
	filtered := re.NewStyle().Foreground(lipgloss.Color("214"))
	exported := re.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	fmt.Fprintln(w, filtered.Render(r.FilterLine()))
	fmt.Fprintln(w, exported.Render(r.ExportLine()))
}

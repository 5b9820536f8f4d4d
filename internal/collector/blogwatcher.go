package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

const defaultBlogwatcherCmd = "blogwatcher"

// AggregatorError 聚合器进程以非零状态退出
type AggregatorError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *AggregatorError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("error running %s (exit %d): %s", e.Command, e.ExitCode, msg)
}

func (e *AggregatorError) Unwrap() error {
	return e.Err
}

// BlogwatcherFetcher 调用本地 blogwatcher 命令列出所有已发现的文章
type BlogwatcherFetcher struct {
	// Command 为空时使用 blogwatcher
	Command string
	// Args 为空时使用 articles --all
	Args []string
}

func (b *BlogwatcherFetcher) Name() string {
	return b.command()
}

func (b *BlogwatcherFetcher) command() string {
	if b.Command == "" {
		return defaultBlogwatcherCmd
	}
	return b.Command
}

func (b *BlogwatcherFetcher) args() []string {
	if len(b.Args) == 0 {
		return []string{"articles", "--all"}
	}
	return b.Args
}

func (b *BlogwatcherFetcher) Fetch(ctx context.Context) ([]ArticleRecord, error) {
	name := b.command()
	log.Printf("run %s %s...", name, strings.Join(b.args(), " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, b.args()...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &AggregatorError{
				Command:  name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
				Err:      err,
			}
		}
		return nil, fmt.Errorf("%s: start: %w", name, err)
	}

	records := ParseArticles(stdout.String())
	log.Printf("%s: parsed %d articles (%d bytes)", name, len(records), stdout.Len())
	return records, nil
}

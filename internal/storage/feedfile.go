package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LJTian/VetFeed/internal/processor"
)

// EncodeFeed 以两个空格缩进输出，不转义 & < > 以便标题可读
func EncodeFeed(feed processor.Feed) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic 先写同目录临时文件再 rename，失败时旧文件保持不变
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // rename 成功后为空操作

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename feed file: %w", err)
	}
	return nil
}

// WriteFeedFile 编码并写出 news.json，返回写入的字节供缓存使用
func WriteFeedFile(path string, feed processor.Feed) ([]byte, error) {
	data, err := EncodeFeed(feed)
	if err != nil {
		return nil, err
	}
	if err := WriteFileAtomic(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadFeedFile 读取已导出的 news.json 原始内容
func ReadFeedFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage はローカルファイルシステムにファイルを保存する Storage 実装。
type LocalStorage struct {
	baseDir string // ディスク上のルートディレクトリ (例: "./uploads")
}

// NewLocalStorage は baseDir を作成した上で LocalStorage を生成する。
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("storage: base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

var _ Storage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ int64, _ string) (string, error) {
	dest, err := s.path(key)
	if err != nil {
		return "", err
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: close: %w", err)
	}
	return dest, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

// path resolves key to a file directly inside baseDir.
func (s *LocalStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(s.baseDir, key), nil
}

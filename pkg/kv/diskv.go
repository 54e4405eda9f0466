package kv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Open creates a disk-backed Store rooted at the configured base path. A nil
// config loads the default configuration.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(string) []string { return []string{} }

type disk struct {
	d        *diskv.Diskv
	basePath string
}

func (s *disk) Get(_ context.Context, key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *disk) Set(_ context.Context, key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	return nil
}

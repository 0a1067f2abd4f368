package mediastore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local guarda las fotos en el filesystem (modo dev).
type Local struct {
	basePath string
}

func NewLocal(basePath string) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Local{basePath: basePath}, nil
}

func (s *Local) Save(ctx context.Context, payload []byte, filename string) (string, error) {
	key := objectKey(filename)
	fullPath := filepath.Join(s.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create media subdir: %w", err)
	}

	if err := os.WriteFile(fullPath, payload, 0o644); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("write picture: %w", err)
	}

	return key, nil
}

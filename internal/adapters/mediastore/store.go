package mediastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"adopet-backend/internal/ports/media"

	"github.com/google/uuid"
)

// Type selecciona el backend del media store.
type Type string

const (
	TypeLocal  Type = "local"
	TypeS3     Type = "s3"
	TypeMemory Type = "memory"
)

type Config struct {
	Type Type

	// local
	LocalPath string

	// s3
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

func New(cfg Config) (media.Store, error) {
	switch cfg.Type {
	case TypeLocal:
		return NewLocal(cfg.LocalPath)
	case TypeS3:
		return NewS3(cfg)
	case TypeMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown media store type: %s", cfg.Type)
	}
}

// NewFromEnv arma el store desde env:
// - STORAGE_TYPE=local|s3|memory (default local)
// - STORAGE_LOCAL_PATH (default ./storage/pictures)
// - AWS_S3_BUCKET, AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
func NewFromEnv() (media.Store, error) {
	storageType := strings.TrimSpace(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = string(TypeLocal)
	}

	cfg := Config{Type: Type(storageType)}

	switch cfg.Type {
	case TypeLocal:
		cfg.LocalPath = os.Getenv("STORAGE_LOCAL_PATH")
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/pictures"
		}
	case TypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("AWS_S3_BUCKET is required for s3 media store")
		}
	}

	return New(cfg)
}

// objectKey genera la key bajo la que se guarda una foto.
// El uuid garantiza unicidad; el prefijo de 2 chars reparte el namespace.
func objectKey(filename string) string {
	id := uuid.NewString()
	ext := filepath.Ext(filename)

	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" {
		base = "picture"
	}

	return fmt.Sprintf("%s/%s_%s%s", id[:2], id, base, ext)
}

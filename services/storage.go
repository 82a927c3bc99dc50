package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorage persists uploaded paper documents and hands back an opaque
// reference. The workflow stores the reference on the paper and never
// inspects file contents.
type FileStorage interface {
	Save(originalName string, src io.Reader) (string, error)
}

// LocalFileStorage stores documents on the local filesystem under BasePath,
// renamed to a uuid so original filenames never collide or leak.
type LocalFileStorage struct {
	BasePath string
}

// NewLocalFileStorage builds a store rooted at UPLOAD_PATH (default
// ./uploads).
func NewLocalFileStorage() *LocalFileStorage {
	basePath := os.Getenv("UPLOAD_PATH")
	if basePath == "" {
		basePath = "./uploads"
	}
	return &LocalFileStorage{BasePath: basePath}
}

// Save writes the document and returns its reference (the generated file
// name). The original extension is kept, lowercased.
func (s *LocalFileStorage) Save(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.BasePath, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	ref := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.BasePath, ref))
	if err != nil {
		return "", fmt.Errorf("create document file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write document file: %w", err)
	}
	return ref, nil
}

package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"recruitly/cv-assistant/internal/models"
)

// StorageService loads résumé bytes into memory. Nothing is written to disk:
// every analysis is request-scoped.
type StorageService interface {
	ReadUploads(files []*multipart.FileHeader) ([]models.UploadedFile, error)
	ReadLocalFiles(paths []string) ([]models.UploadedFile, error)
}

type storageService struct{}

func NewStorageService() StorageService {
	return &storageService{}
}

// ReadUploads implements StorageService, keeping the upload order.
func (s *storageService) ReadUploads(files []*multipart.FileHeader) ([]models.UploadedFile, error) {
	uploads := make([]models.UploadedFile, 0, len(files))

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
		}

		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file %s: %w", file.Filename, err)
		}

		uploads = append(uploads, models.UploadedFile{
			FileName: file.Filename,
			Content:  content,
		})
	}

	return uploads, nil
}

// ReadLocalFiles implements StorageService. The file name reported for each
// entry is the base name of its path.
func (s *storageService) ReadLocalFiles(paths []string) ([]models.UploadedFile, error) {
	uploads := make([]models.UploadedFile, 0, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		uploads = append(uploads, models.UploadedFile{
			FileName: filepath.Base(path),
			Content:  content,
		})
	}

	return uploads, nil
}

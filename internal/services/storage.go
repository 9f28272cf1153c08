package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader, fileType string) (string, string, error)
	CreateFile(fileType, ext string) (string, error)
	AppendChunk(filename string, data []byte) (int64, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath  string
	allowedExts map[string]bool
}

// NewStorageService stores files under uploadPath. SaveFile accepts only the
// listed extensions.
func NewStorageService(uploadPath string, allowedExts ...string) StorageService {
	allowed := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = true
	}
	return &storageService{
		uploadPath:  uploadPath,
		allowedExts: allowed,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.allowedExts[ext] {
		return "", "", fmt.Errorf("invalid file extension %q: %w", ext, ErrValidation)
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

// CreateFile creates an empty uniquely named file and returns its name.
func (s *storageService) CreateFile(fileType, ext string) (string, error) {
	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)

	f, err := os.Create(s.GetFilePath(uniqueFilename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	return uniqueFilename, nil
}

// AppendChunk appends data to filename and returns the bytes written.
func (s *storageService) AppendChunk(filename string, data []byte) (int64, error) {
	f, err := os.OpenFile(s.GetFilePath(filename), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open file for append: %w", err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to append chunk: %w", err)
	}
	return int64(n), nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

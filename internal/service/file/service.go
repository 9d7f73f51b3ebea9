package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/storage"
)

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// documentExts are additionally accepted on task submissions.
var documentExts = []string{".pdf", ".pptx", ".docx", ".doc", ".ppt"}

type FileService interface {
	// UploadSubmissionFile stores one completion artifact for a task.
	UploadSubmissionFile(ctx context.Context, taskID string, file io.Reader, filename string) (task.SubmissionFile, error)

	// UploadAvatar stores a profile picture and returns its URL.
	UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error)

	// UploadImage stores a generic image under the given folder and
	// returns its URL.
	UploadImage(ctx context.Context, folder string, file io.Reader, filename string) (string, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	primary  storage.FileStorage
	fallback storage.FileStorage
}

// NewFileService builds a file service. fallback is used when an upload to
// primary fails, so a degraded remote backend downgrades the resource
// locator instead of failing the request; pass the same backend twice when
// only local storage is configured.
func NewFileService(primary, fallback storage.FileStorage) FileService {
	return &fileServiceImpl{
		primary:  primary,
		fallback: fallback,
	}
}

func allowedExt(ext string, allowed ...[]string) bool {
	for _, group := range allowed {
		for _, a := range group {
			if ext == a {
				return true
			}
		}
	}
	return false
}

// upload tries the primary backend first and degrades to the fallback.
func (s *fileServiceImpl) upload(ctx context.Context, file io.Reader, path string, contentType string) (key string, store storage.FileStorage, err error) {
	if s.fallback == nil || s.fallback == s.primary {
		key, err = s.primary.Upload(ctx, file, path, contentType)
		if err != nil {
			return "", nil, err
		}
		return key, s.primary, nil
	}

	// The primary may consume part of the stream before failing; buffer the
	// source so the fallback never stores truncated content.
	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}

	key, err = s.primary.Upload(ctx, bytes.NewReader(data), path, contentType)
	if err == nil {
		return key, s.primary, nil
	}

	slog.Warn("primary storage upload failed, falling back to local", "path", path, "error", err)
	key, fbErr := s.fallback.Upload(ctx, bytes.NewReader(data), path, contentType)
	if fbErr != nil {
		return "", nil, fmt.Errorf("fallback upload failed: %w (primary: %v)", fbErr, err)
	}
	return key, s.fallback, nil
}

// UploadSubmissionFile implements FileService.
func (s *fileServiceImpl) UploadSubmissionFile(ctx context.Context, taskID string, file io.Reader, filename string) (task.SubmissionFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt(ext, imageExts, documentExts) {
		return task.SubmissionFile{}, fmt.Errorf("invalid file type: only images, pdf, pptx and docx are allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", taskID, uuid.New().String(), ext)
	path := filepath.Join("task-submissions", taskID, newFilename)

	key, store, err := s.upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return task.SubmissionFile{}, fmt.Errorf("failed to upload submission file: %w", err)
	}

	url, err := store.GetURL(ctx, key, 0)
	if err != nil {
		return task.SubmissionFile{}, fmt.Errorf("failed to resolve file url: %w", err)
	}

	return task.SubmissionFile{
		URL:          url,
		StorageKey:   key,
		OriginalName: filename,
		FileType:     strings.TrimPrefix(ext, "."),
	}, nil
}

// UploadAvatar implements FileService.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt(ext, imageExts) {
		return "", fmt.Errorf("invalid file type: only images are allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", ownerID, uuid.New().String(), ext)
	path := filepath.Join("avatars", ownerID, newFilename)

	key, store, err := s.upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return store.GetURL(ctx, key, 0)
}

// UploadImage implements FileService.
func (s *fileServiceImpl) UploadImage(ctx context.Context, folder string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt(ext, imageExts, documentExts) {
		return "", fmt.Errorf("invalid file type: only images, pdf, pptx and docx are allowed")
	}
	if folder == "" {
		folder = "employees"
	}

	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join(folder, newFilename)

	key, store, err := s.upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return store.GetURL(ctx, key, 0)
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.primary.Delete(ctx, path)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

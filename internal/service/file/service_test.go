package file

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStorage consumes part of the stream before failing, the way a remote
// backend does when the connection drops mid-transfer.
type flakyStorage struct {
	consumed int64
}

func (f *flakyStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	n, _ := io.CopyN(io.Discard, file, 4)
	f.consumed += n
	return "", errors.New("connection reset")
}

func (f *flakyStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, errors.New("connection reset")
}

func (f *flakyStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *flakyStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "", errors.New("connection reset")
}

func (f *flakyStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

// recordingStorage keeps everything it is asked to store.
type recordingStorage struct {
	files map[string][]byte
}

func newRecordingStorage() *recordingStorage {
	return &recordingStorage{files: make(map[string][]byte)}
}

func (r *recordingStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	r.files[path] = data
	return path, nil
}

func (r *recordingStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(r.files[path]))), nil
}

func (r *recordingStorage) Delete(ctx context.Context, path string) error {
	delete(r.files, path)
	return nil
}

func (r *recordingStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/uploads/" + path, nil
}

func (r *recordingStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := r.files[path]
	return ok, nil
}

func TestFileService_UploadSubmissionFile_FallbackGetsFullContent(t *testing.T) {
	primary := &flakyStorage{}
	fallback := newRecordingStorage()
	svc := NewFileService(primary, fallback)

	content := "the full report body, longer than the primary read"
	got, err := svc.UploadSubmissionFile(context.Background(), "task-1", strings.NewReader(content), "report.pdf")
	require.NoError(t, err)

	// The primary consumed part of the stream before failing; the fallback
	// must still receive the file from the beginning.
	require.Len(t, fallback.files, 1)
	for _, stored := range fallback.files {
		assert.Equal(t, content, string(stored))
	}
	assert.Equal(t, "report.pdf", got.OriginalName)
	assert.Equal(t, "pdf", got.FileType)
	assert.NotEmpty(t, got.URL)
}

func TestFileService_UploadSubmissionFile_PrimaryOnlyFailure(t *testing.T) {
	primary := &flakyStorage{}
	svc := NewFileService(primary, primary)

	_, err := svc.UploadSubmissionFile(context.Background(), "task-1", strings.NewReader("body"), "report.pdf")
	assert.Error(t, err)
}

func TestFileService_UploadSubmissionFile_RejectsUnknownExtension(t *testing.T) {
	store := newRecordingStorage()
	svc := NewFileService(store, store)

	_, err := svc.UploadSubmissionFile(context.Background(), "task-1", strings.NewReader("#!/bin/sh"), "payload.sh")
	assert.Error(t, err)
	assert.Empty(t, store.files)
}

func TestFileService_UploadAvatar_ImagesOnly(t *testing.T) {
	store := newRecordingStorage()
	svc := NewFileService(store, store)

	url, err := svc.UploadAvatar(context.Background(), "user-1", strings.NewReader("png-bytes"), "me.png")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	_, err = svc.UploadAvatar(context.Background(), "user-1", strings.NewReader("%PDF"), "cv.pdf")
	assert.Error(t, err)
}

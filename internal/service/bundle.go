package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"examdocs/internal/bundle"
	"examdocs/internal/model"
	"examdocs/internal/repository"
	"examdocs/internal/storage"
)

// BundleListResult is the service-level DTO for paginated bundles.
type BundleListResult struct {
	Items []model.Bundle `json:"data"`
	Total int            `json:"total"`
}

// BundleService archives generated bundles and serves them back.
type BundleService interface {
	// Archive uploads the zip to object storage and records its metadata, removing the object
	// again if the database write fails. Course, ExamType and counts are taken from meta.
	Archive(ctx context.Context, r io.Reader, size int64, meta model.Bundle) (*model.Bundle, error)

	// List returns bundles using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*BundleListResult, error)

	// Get returns a single bundle by its ID.
	Get(ctx context.Context, id string) (*model.Bundle, error)

	// Open streams the archived zip.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Bundle, error)

	// DownloadURL returns a pre-signed URL valid for expiry.
	DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes a bundle from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type bundleService struct {
	store storage.Storage
	repo  repository.BundleRepository
	now   func() time.Time
}

// NewBundleService constructs a new BundleService.
func NewBundleService(store storage.Storage, repo repository.BundleRepository) BundleService {
	return &bundleService{store: store, repo: repo, now: time.Now}
}

func (s *bundleService) Archive(ctx context.Context, r io.Reader, size int64, meta model.Bundle) (*model.Bundle, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	id := uuid.New().String()
	key := storage.BundleKey(id)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: bundle.ContentType,
		Metadata: map[string]string{
			"course":    meta.Course,
			"exam-type": meta.ExamType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	rec := &model.Bundle{
		ID:           id,
		Filename:     bundle.Filename,
		StoragePath:  objInfo.Key,
		Size:         objInfo.Size,
		ContentType:  bundle.ContentType,
		Course:       meta.Course,
		ExamType:     meta.ExamType,
		RoomCount:    meta.RoomCount,
		StudentCount: meta.StudentCount,
		CreatedAt:    s.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *bundleService) List(ctx context.Context, limit, offset int) (*BundleListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &BundleListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *bundleService) Get(ctx context.Context, id string) (*model.Bundle, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bundleService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Bundle, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, b.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return rc, b, nil
}

func (s *bundleService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, b.StoragePath, expiry)
}

// Delete removes the object first; the row is kept if that fails so the reference is not lost.
func (s *bundleService) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, b.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

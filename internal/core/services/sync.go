package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.SyncService = (*SyncService)(nil)

// SyncService imports markdown files from a source into the document
// store.
type SyncService struct {
	docs        driving.DocumentService
	minInterval time.Duration
}

// NewSyncService creates a new sync service. minInterval spaces out
// re-imports while watching; zero disables throttling.
func NewSyncService(docs driving.DocumentService, minInterval time.Duration) *SyncService {
	return &SyncService{docs: docs, minInterval: minInterval}
}

// Sync imports every file the source currently holds. A file that fails
// does not stop the others; all failures are returned joined.
func (s *SyncService) Sync(ctx context.Context, source driven.MarkdownSource) (int, error) {
	files, err := source.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("scanning source: %w", err)
	}

	logger.Section("Sync")
	var errs []error
	imported := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		if _, err := s.docs.ImportContent(ctx, f.Path, string(f.Content)); err != nil {
			logger.Warn("importing %s: %v", f.Path, err)
			errs = append(errs, fmt.Errorf("%s: %w", f.Path, err))
			continue
		}
		logger.Info("imported %s", f.Path)
		imported++
	}
	return imported, errors.Join(errs...)
}

// Watch handles changes from the source until ctx is cancelled or the
// source stops.
func (s *SyncService) Watch(
	ctx context.Context,
	source driven.MarkdownSource,
	onChange func(domain.FileChange, error),
) error {
	changes, err := source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching source: %w", err)
	}

	limit := rate.Inf
	if s.minInterval > 0 {
		limit = rate.Every(s.minInterval)
	}
	limiter := rate.NewLimiter(limit, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil //nolint:nilerr // cancellation ends the watch
			}
			err := s.apply(ctx, change)
			if err != nil {
				logger.Warn("%s %s: %v", change.Type, change.File.Path, err)
			} else {
				logger.Info("%s %s", change.Type, change.File.Path)
			}
			if onChange != nil {
				onChange(change, err)
			}
		}
	}
}

func (s *SyncService) apply(ctx context.Context, change domain.FileChange) error {
	if change.Type == domain.ChangeDeleted {
		return s.docs.DeleteByURI(ctx, change.File.Path)
	}
	_, err := s.docs.ImportContent(ctx, change.File.Path, string(change.File.Content))
	return err
}

package serviceimpl

import (
	"context"
	"errors"
	"time"

	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/scheduler"
)

const bannerCleanupJobID = "banner_cleanup"

// BannerCleanupConfig การตั้งค่าสำหรับลบ banner ที่ไม่มี meetup ใช้
type BannerCleanupConfig struct {
	Cron        string        // default: "0 3 * * *" = 3 AM daily
	OrphanAfter time.Duration // uploads younger than this are kept (default: 24 hours)
	BatchSize   int
}

// BannerCleanupService removes uploaded files that were never attached to
// a meetup.
type BannerCleanupService struct {
	config    BannerCleanupConfig
	fileRepo  repositories.FileRepository
	storage   ports.StoragePort
	scheduler scheduler.EventScheduler
	now       func() time.Time
}

var _ services.BannerCleanupService = (*BannerCleanupService)(nil)

func NewBannerCleanupService(
	config BannerCleanupConfig,
	fileRepo repositories.FileRepository,
	storage ports.StoragePort,
	eventScheduler scheduler.EventScheduler,
) *BannerCleanupService {
	service := &BannerCleanupService{
		config:    config,
		fileRepo:  fileRepo,
		storage:   storage,
		scheduler: eventScheduler,
		now:       time.Now,
	}

	if service.config.Cron == "" {
		service.config.Cron = "0 3 * * *"
	}
	if service.config.OrphanAfter <= 0 {
		service.config.OrphanAfter = 24 * time.Hour
	}
	if service.config.BatchSize <= 0 {
		service.config.BatchSize = 100
	}

	return service
}

// RegisterCleanupJob registers the sweep with the scheduler.
func (s *BannerCleanupService) RegisterCleanupJob() error {
	return s.scheduler.AddJob(bannerCleanupJobID, s.config.Cron, func() {
		s.RunCleanup(context.Background())
	})
}

// RunCleanup deletes one batch of orphaned banners. The row goes first so a
// meetup created meanwhile trips the foreign key and keeps its banner.
func (s *BannerCleanupService) RunCleanup(ctx context.Context) services.CleanupResult {
	var result services.CleanupResult
	cutoff := s.now().Add(-s.config.OrphanAfter)

	logger.InfoContext(ctx, "Starting banner cleanup", "older_than", cutoff)

	orphans, err := s.fileRepo.ListOrphans(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		logger.WarnContext(ctx, "Error listing orphaned banners", "error", err)
		return result
	}
	result.Scanned = len(orphans)

	for _, file := range orphans {
		if err := s.fileRepo.Delete(ctx, file.ID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				result.Failed++
				logger.WarnContext(ctx, "Failed to delete banner record", "file_id", file.ID, "error", err)
			}
			continue
		}

		if err := s.storage.DeleteFile(ctx, file.Path); err != nil {
			result.Failed++
			logger.WarnContext(ctx, "Failed to delete banner object", "file_id", file.ID, "path", file.Path, "error", err)
			continue
		}

		result.Deleted++
		logger.DebugContext(ctx, "Deleted orphaned banner", "file_id", file.ID, "path", file.Path)
	}

	logger.InfoContext(ctx, "Banner cleanup completed",
		"scanned", result.Scanned,
		"deleted", result.Deleted,
		"failed", result.Failed,
	)
	return result
}

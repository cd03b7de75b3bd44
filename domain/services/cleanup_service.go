package services

import "context"

// CleanupResult summarises one orphan banner sweep.
type CleanupResult struct {
	Scanned int
	Deleted int
	Failed  int
}

type BannerCleanupService interface {
	RegisterCleanupJob() error
	RunCleanup(ctx context.Context) CleanupResult
}

package serial

import (
	"fmt"
	"strings"
	"time"

	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/serialcode"

	"go.uber.org/zap"
)

// MaxAttempts bounds the allocation retry loop. Exhausting it surfaces
// ErrSerialAllocationFailed instead of recursing under contention.
const MaxAttempts = 5

type ScanRepository interface {
	HighestSequence(prefix string, year int) (int, error)
	SerialExists(serial string) (bool, error)
}

// Allocator generates serial numbers scoped by type prefix and year. It is
// best effort: the unique constraint on assets.serial is the authoritative
// guard, so callers must still handle a unique violation on insert.
type Allocator struct {
	repo ScanRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewAllocator(repo ScanRepository, log *zap.Logger) *Allocator {
	return &Allocator{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// Next returns the next free serial number for the given asset type.
func (a *Allocator) Next(assetType string) (string, error) {
	if strings.TrimSpace(assetType) == "" {
		return "", fmt.Errorf("asset type must not be empty")
	}

	prefix := serialcode.Prefix(assetType)
	year := a.now().Year()

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		highest, err := a.repo.HighestSequence(prefix, year)
		if err != nil {
			return "", fmt.Errorf("failed to scan serial numbers for %s: %w", prefix, err)
		}

		candidate := serialcode.Format(prefix, year, highest+1)

		taken, err := a.repo.SerialExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check serial %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}

		a.log.Warn("serial candidate already taken, retrying",
			zap.String("serial", candidate),
			zap.Int("attempt", attempt),
		)
	}

	return "", custom_error.ErrSerialAllocationFailed
}

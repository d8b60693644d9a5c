package assets

import (
	"errors"

	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/auditlog"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"go.uber.org/zap"
)

// maxCreateAttempts bounds the allocate-then-insert loop. The allocator is
// best effort, so the insert can still lose a serial race; each loss gets a
// fresh allocation.
const maxCreateAttempts = 5

type SerialAllocator interface {
	Next(assetType string) (string, error)
}

type Service interface {
	CreateAsset(req models.AssetRequest) (*models.Asset, error)
	GetAsset(id int) (*models.Asset, error)
	GetAssetList() ([]models.Asset, error)
	UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(id int) error
}

type AssetService struct {
	repo      AssetsRepository
	allocator SerialAllocator
	auditLog  auditlog.Recorder
	log       *zap.Logger
}

func NewService(repo AssetsRepository, allocator SerialAllocator, auditLog auditlog.Recorder, log *zap.Logger) *AssetService {
	return &AssetService{
		repo:      repo,
		allocator: allocator,
		auditLog:  auditLog,
		log:       log,
	}
}

func (s *AssetService) CreateAsset(req models.AssetRequest) (*models.Asset, error) {
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		serialNumber, err := s.allocator.Next(req.Type)
		if err != nil {
			return nil, err
		}

		asset, err := s.repo.PersistAsset(req, serialNumber)
		if err != nil {
			var uniqueErr *custom_error.UniqueViolationError
			if errors.As(err, &uniqueErr) {
				// The serial unique constraint is the authoritative guard;
				// losing the insert race just means allocating again.
				s.log.Warn("serial taken before insert, reallocating",
					zap.String("serial", serialNumber),
					zap.Int("attempt", attempt),
				)
				continue
			}
			return nil, err
		}

		s.log.Info("asset registered",
			zap.Int("asset_id", asset.ID),
			zap.String("serial", asset.Serial),
		)
		go s.auditLog.Log(
			"create",
			map[string]interface{}{
				"serial": asset.Serial,
				"name":   asset.Name,
				"type":   asset.Type,
			},
			asset,
		)

		return asset, nil
	}

	return nil, custom_error.ErrSerialAllocationFailed
}

func (s *AssetService) GetAsset(id int) (*models.Asset, error) {
	return s.repo.GetAsset(id)
}

func (s *AssetService) GetAssetList() ([]models.Asset, error) {
	return s.repo.GetAssetList()
}

func (s *AssetService) UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error) {
	return s.repo.UpdateAsset(id, req)
}

func (s *AssetService) DeleteAsset(id int) error {
	if err := s.repo.RemoveAsset(id); err != nil {
		return err
	}

	s.log.Info("asset removed", zap.Int("asset_id", id))
	go s.auditLog.Log(
		"delete",
		map[string]interface{}{"msg": "Asset and assignment history removed"},
		&models.Asset{ID: id},
	)

	return nil
}

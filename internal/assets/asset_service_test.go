package assets

import (
	"testing"

	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/auditlog"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAssetsRepository struct {
	mock.Mock
}

func (m *MockAssetsRepository) PersistAsset(req models.AssetRequest, serial string) (*models.Asset, error) {
	args := m.Called(req, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) GetAsset(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) GetAssetList() ([]models.Asset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) RemoveAsset(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockAllocator struct {
	mock.Mock
}

func (m *MockAllocator) Next(assetType string) (string, error) {
	args := m.Called(assetType)
	return args.String(0), args.Error(1)
}

type noopAuditLog struct{}

func (noopAuditLog) Log(action string, data interface{}, item auditlog.Auditable) {}

func newTestService(repo AssetsRepository, allocator SerialAllocator) *AssetService {
	return NewService(repo, allocator, noopAuditLog{}, zap.NewNop())
}

func TestCreateAssetAllocatesSerial(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	req := models.AssetRequest{Name: "MacBook Pro", Type: "Laptop"}
	created := &models.Asset{ID: 1, Name: "MacBook Pro", Type: "Laptop", Serial: "LA-2025-001"}

	allocator.On("Next", "Laptop").Return("LA-2025-001", nil).Once()
	repo.On("PersistAsset", req, "LA-2025-001").Return(created, nil).Once()

	asset, err := newTestService(repo, allocator).CreateAsset(req)

	assert.NoError(t, err)
	assert.Equal(t, "LA-2025-001", asset.Serial)
	repo.AssertExpectations(t)
	allocator.AssertExpectations(t)
}

func TestCreateAssetReallocatesOnSerialRace(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	req := models.AssetRequest{Name: "MacBook Pro", Type: "Laptop"}
	created := &models.Asset{ID: 2, Serial: "LA-2025-002"}

	// A concurrent registration wins the first serial; the insert fails on
	// the unique constraint and the service allocates again.
	allocator.On("Next", "Laptop").Return("LA-2025-001", nil).Once()
	repo.On("PersistAsset", req, "LA-2025-001").
		Return(nil, custom_error.WrapDBError("Duplicate serial number for asset", "23505")).Once()
	allocator.On("Next", "Laptop").Return("LA-2025-002", nil).Once()
	repo.On("PersistAsset", req, "LA-2025-002").Return(created, nil).Once()

	asset, err := newTestService(repo, allocator).CreateAsset(req)

	assert.NoError(t, err)
	assert.Equal(t, "LA-2025-002", asset.Serial)
	repo.AssertExpectations(t)
}

func TestCreateAssetExhaustsRetryBudget(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	req := models.AssetRequest{Name: "MacBook Pro", Type: "Laptop"}

	allocator.On("Next", "Laptop").Return("LA-2025-001", nil)
	repo.On("PersistAsset", req, "LA-2025-001").
		Return(nil, custom_error.WrapDBError("Duplicate serial number for asset", "23505"))

	asset, err := newTestService(repo, allocator).CreateAsset(req)

	assert.ErrorIs(t, err, custom_error.ErrSerialAllocationFailed)
	assert.Nil(t, asset)
	repo.AssertNumberOfCalls(t, "PersistAsset", maxCreateAttempts)
}

func TestCreateAssetSurfacesAllocatorFailure(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	req := models.AssetRequest{Name: "MacBook Pro", Type: "Laptop"}

	allocator.On("Next", "Laptop").Return("", custom_error.ErrSerialAllocationFailed)

	_, err := newTestService(repo, allocator).CreateAsset(req)

	assert.ErrorIs(t, err, custom_error.ErrSerialAllocationFailed)
	repo.AssertNotCalled(t, "PersistAsset")
}

func TestDeleteAssetBlockedWhileAssigned(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	repo.On("RemoveAsset", 7).Return(custom_error.ErrAssetInUse)

	err := newTestService(repo, allocator).DeleteAsset(7)

	assert.ErrorIs(t, err, custom_error.ErrAssetInUse)
}

func TestDeleteAssetRemovesHistory(t *testing.T) {
	repo := new(MockAssetsRepository)
	allocator := new(MockAllocator)
	repo.On("RemoveAsset", 7).Return(nil)

	err := newTestService(repo, allocator).DeleteAsset(7)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

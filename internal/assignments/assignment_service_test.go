package assignments

import (
	"testing"
	"time"

	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/auditlog"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) InsertAssignment(assetID, employeeID int) (*models.Assignment, error) {
	args := m.Called(assetID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockLedgerRepository) ReturnAssignment(assignmentID int) (*models.Assignment, error) {
	args := m.Called(assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockLedgerRepository) ActiveAssignments() ([]models.AssignmentDetails, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssignmentDetails), args.Error(1)
}

func (m *MockLedgerRepository) AssetHistory(assetID int) ([]models.Assignment, error) {
	args := m.Called(assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assignment), args.Error(1)
}

type noopAuditLog struct{}

func (noopAuditLog) Log(action string, data interface{}, item auditlog.Auditable) {}

func newTestService(repo LedgerRepository) *LedgerService {
	return NewService(repo, noopAuditLog{}, zap.NewNop())
}

func TestAssignCreatesActiveAssignment(t *testing.T) {
	repo := new(MockLedgerRepository)
	created := &models.Assignment{
		ID:         1,
		AssetID:    7,
		EmployeeID: 3,
		AssignedAt: time.Now(),
	}
	repo.On("InsertAssignment", 7, 3).Return(created, nil)

	assignment, err := newTestService(repo).Assign(models.AssignmentRequest{AssetID: 7, EmployeeID: 3})

	assert.NoError(t, err)
	assert.Equal(t, created, assignment)
	assert.Nil(t, assignment.ReturnedAt)
	repo.AssertExpectations(t)
}

func TestAssignConflictOnActiveAssignment(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("InsertAssignment", 7, 3).Return(nil, custom_error.ErrAlreadyAssigned)

	assignment, err := newTestService(repo).Assign(models.AssignmentRequest{AssetID: 7, EmployeeID: 3})

	assert.ErrorIs(t, err, custom_error.ErrAlreadyAssigned)
	assert.Nil(t, assignment)
}

func TestAssignUnknownReferences(t *testing.T) {
	repo := new(MockLedgerRepository)
	repo.On("InsertAssignment", 999, 3).Return(nil, custom_error.ErrNotFound)

	_, err := newTestService(repo).Assign(models.AssignmentRequest{AssetID: 999, EmployeeID: 3})

	assert.ErrorIs(t, err, custom_error.ErrNotFound)
}

func TestReturnIsSingleShot(t *testing.T) {
	repo := new(MockLedgerRepository)
	assignedAt := time.Now().Add(-time.Hour)
	returnedAt := time.Now()
	returned := &models.Assignment{
		ID:         5,
		AssetID:    7,
		EmployeeID: 3,
		AssignedAt: assignedAt,
		ReturnedAt: &returnedAt,
	}
	repo.On("ReturnAssignment", 5).Return(returned, nil).Once()
	repo.On("ReturnAssignment", 5).Return(nil, custom_error.ErrNotFoundOrAlreadyReturned).Once()

	service := newTestService(repo)

	first, err := service.Return(5)
	assert.NoError(t, err)
	assert.NotNil(t, first.ReturnedAt)
	assert.True(t, !first.ReturnedAt.Before(first.AssignedAt))

	second, err := service.Return(5)
	assert.ErrorIs(t, err, custom_error.ErrNotFoundOrAlreadyReturned)
	assert.Nil(t, second)
	repo.AssertExpectations(t)
}

func TestActiveAssignmentsPassthrough(t *testing.T) {
	repo := new(MockLedgerRepository)
	details := []models.AssignmentDetails{
		{Assignment: models.Assignment{ID: 2, AssetID: 9}},
		{Assignment: models.Assignment{ID: 1, AssetID: 7}},
	}
	repo.On("ActiveAssignments").Return(details, nil)

	result, err := newTestService(repo).ActiveAssignments()

	assert.NoError(t, err)
	assert.Equal(t, details, result)
}

package assignments

import (
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/auditlog"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"go.uber.org/zap"
)

type Service interface {
	Assign(req models.AssignmentRequest) (*models.Assignment, error)
	Return(assignmentID int) (*models.Assignment, error)
	ActiveAssignments() ([]models.AssignmentDetails, error)
	AssetHistory(assetID int) ([]models.Assignment, error)
}

type LedgerService struct {
	repo     LedgerRepository
	auditLog auditlog.Recorder
	log      *zap.Logger
}

func NewService(repo LedgerRepository, auditLog auditlog.Recorder, log *zap.Logger) *LedgerService {
	return &LedgerService{
		repo:     repo,
		auditLog: auditLog,
		log:      log,
	}
}

func (s *LedgerService) Assign(req models.AssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.repo.InsertAssignment(req.AssetID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	s.log.Info("asset assigned",
		zap.Int("assignment_id", assignment.ID),
		zap.Int("asset_id", assignment.AssetID),
		zap.Int("employee_id", assignment.EmployeeID),
	)
	go s.auditLog.Log(
		"assign",
		map[string]interface{}{
			"asset_id":    assignment.AssetID,
			"employee_id": assignment.EmployeeID,
		},
		assignment,
	)

	return assignment, nil
}

func (s *LedgerService) Return(assignmentID int) (*models.Assignment, error) {
	assignment, err := s.repo.ReturnAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	s.log.Info("asset returned",
		zap.Int("assignment_id", assignment.ID),
		zap.Int("asset_id", assignment.AssetID),
	)
	go s.auditLog.Log(
		"return",
		map[string]interface{}{
			"asset_id":    assignment.AssetID,
			"returned_at": assignment.ReturnedAt,
		},
		assignment,
	)

	return assignment, nil
}

func (s *LedgerService) ActiveAssignments() ([]models.AssignmentDetails, error) {
	return s.repo.ActiveAssignments()
}

func (s *LedgerService) AssetHistory(assetID int) ([]models.Assignment, error) {
	return s.repo.AssetHistory(assetID)
}

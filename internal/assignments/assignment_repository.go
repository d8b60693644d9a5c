package assignments

import (
	"fmt"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// activeAssignmentIndex is the partial unique index over assignments(asset_id)
// WHERE returned_at IS NULL. It is what makes "one active holder per asset"
// atomic against concurrent assign calls; a plain check-then-insert has a
// race window between the check and the insert.
const activeAssignmentIndex = "assignments_one_active_per_asset"

var assignmentColumns = []interface{}{"id", "asset_id", "employee_id", "assigned_at", "returned_at"}

type LedgerRepository interface {
	InsertAssignment(assetID, employeeID int) (*models.Assignment, error)
	ReturnAssignment(assignmentID int) (*models.Assignment, error)
	ActiveAssignments() ([]models.AssignmentDetails, error)
	AssetHistory(assetID int) ([]models.Assignment, error)
}

type ledgerRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) LedgerRepository {
	return &ledgerRepository{repo: r}
}

func (r *ledgerRepository) InsertAssignment(assetID, employeeID int) (*models.Assignment, error) {
	query := r.repo.GoquDBWrapper.Insert("assignments").
		Rows(goqu.Record{
			"asset_id":    assetID,
			"employee_id": employeeID,
		}).
		Returning(assignmentColumns...)

	var assignment models.Assignment
	if _, err := query.Executor().ScanStruct(&assignment); err != nil {
		switch {
		case custom_error.IsUniqueViolation(err, activeAssignmentIndex):
			return nil, custom_error.ErrAlreadyAssigned
		case custom_error.IsForeignKeyViolation(err):
			return nil, custom_error.ErrNotFound
		}
		return nil, fmt.Errorf("failed to insert assignment record: %w", err)
	}

	return &assignment, nil
}

// ReturnAssignment closes an active assignment. The returned_at IS NULL
// predicate makes concurrent returns race to a single winner; the loser
// matches zero rows.
func (r *ledgerRepository) ReturnAssignment(assignmentID int) (*models.Assignment, error) {
	query := r.repo.GoquDBWrapper.Update("assignments").
		Set(goqu.Record{"returned_at": goqu.L("NOW()")}).
		Where(goqu.Ex{
			"id":          assignmentID,
			"returned_at": nil,
		}).
		Returning(assignmentColumns...)

	var assignment models.Assignment
	found, err := query.Executor().ScanStruct(&assignment)
	if err != nil {
		if custom_error.IsCheckViolation(err) {
			return nil, fmt.Errorf("return time precedes assignment time for assignment %d: %w", assignmentID, err)
		}
		return nil, fmt.Errorf("failed to close assignment %d: %w", assignmentID, err)
	}
	if !found {
		return nil, custom_error.ErrNotFoundOrAlreadyReturned
	}

	return &assignment, nil
}

func (r *ledgerRepository) ActiveAssignments() ([]models.AssignmentDetails, error) {
	var flatRecords []models.FlatAssignmentRecord

	query := r.repo.GoquDBWrapper.
		Select(
			goqu.I("asg.id").As("assignment_id"),
			goqu.I("a.id").As("asset_id"),
			goqu.I("a.name").As("asset_name"),
			goqu.I("a.type").As("asset_type"),
			goqu.I("a.serial").As("asset_serial"),
			goqu.I("e.id").As("employee_id"),
			goqu.I("e.full_name").As("employee_full_name"),
			goqu.I("e.email").As("employee_email"),
			goqu.I("asg.assigned_at").As("assigned_at"),
			goqu.I("asg.returned_at").As("returned_at"),
		).
		From(goqu.T("assignments").As("asg")).
		LeftJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"asg.asset_id": goqu.I("a.id")}),
		).
		LeftJoin(
			goqu.T("employees").As("e"),
			goqu.On(goqu.Ex{"asg.employee_id": goqu.I("e.id")}),
		).
		Where(goqu.I("asg.returned_at").IsNull()).
		Order(goqu.I("asg.assigned_at").Desc())

	if err := query.Executor().ScanStructs(&flatRecords); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	details := make([]models.AssignmentDetails, 0, len(flatRecords))
	for i := range flatRecords {
		details = append(details, flatRecords[i].TransformToDetails())
	}

	return details, nil
}

func (r *ledgerRepository) AssetHistory(assetID int) ([]models.Assignment, error) {
	var assignments []models.Assignment

	query := r.repo.GoquDBWrapper.
		Select(assignmentColumns...).
		From("assignments").
		Where(goqu.Ex{"asset_id": assetID}).
		Order(goqu.C("assigned_at").Desc())

	if err := query.Executor().ScanStructs(&assignments); err != nil {
		return nil, fmt.Errorf("failed to fetch assignment history for asset %d: %w", assetID, err)
	}

	return assignments, nil
}

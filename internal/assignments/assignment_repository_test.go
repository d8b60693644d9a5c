package assignments

import (
	"testing"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockRepository(t *testing.T) (LedgerRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(repository.NewRepository(db)), mock
}

func TestInsertAssignmentTranslatesActiveIndexViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	// The partial unique index is what decides the race; its violation must
	// surface as the business conflict, never as a raw storage error.
	mock.ExpectQuery(`INSERT INTO "assignments"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "assignments_one_active_per_asset"})

	assignment, err := repo.InsertAssignment(7, 3)

	assert.ErrorIs(t, err, custom_error.ErrAlreadyAssigned)
	assert.Nil(t, assignment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssignmentTranslatesMissingReference(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO "assignments"`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "assignments_employee_id_fkey"})

	assignment, err := repo.InsertAssignment(7, 999)

	assert.ErrorIs(t, err, custom_error.ErrNotFound)
	assert.Nil(t, assignment)
}

func TestInsertAssignmentKeepsUnrelatedUniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO "assignments"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "assignments_pkey"})

	_, err := repo.InsertAssignment(7, 3)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, custom_error.ErrAlreadyAssigned)
}

func TestReturnAssignmentZeroRowsMeansAlreadyReturned(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`UPDATE "assignments" SET "returned_at"=NOW\(\) WHERE \(\("id" = 5\) AND \("returned_at" IS NULL\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "asset_id", "employee_id", "assigned_at", "returned_at"}))

	assignment, err := repo.ReturnAssignment(5)

	assert.ErrorIs(t, err, custom_error.ErrNotFoundOrAlreadyReturned)
	assert.Nil(t, assignment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package serial

import (
	"fmt"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/serialcode"

	"github.com/doug-martin/goqu/v9"
)

type serialRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) ScanRepository {
	return &serialRepository{repo: r}
}

// HighestSequence scans every serial in the prefix/year scope and returns the
// highest numeric suffix, 0 when the scope is empty. Comparison is numeric:
// "LA-2025-1000" sorts above "LA-2025-999" even though the string does not.
func (r *serialRepository) HighestSequence(prefix string, year int) (int, error) {
	scope := serialcode.ScopePrefix(prefix, year)

	var serials []string
	query := r.repo.GoquDBWrapper.
		Select("serial").
		From("assets").
		Where(goqu.C("serial").Like(scope + "%"))

	if err := query.Executor().ScanVals(&serials); err != nil {
		return 0, fmt.Errorf("failed to fetch serials for scope %s: %w", scope, err)
	}

	highest := 0
	for _, serial := range serials {
		if n, ok := serialcode.SequenceNumber(serial, prefix, year); ok && n > highest {
			highest = n
		}
	}

	return highest, nil
}

func (r *serialRepository) SerialExists(serial string) (bool, error) {
	var count int
	query := r.repo.GoquDBWrapper.
		Select(goqu.COUNT("id")).
		From("assets").
		Where(goqu.Ex{"serial": serial})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return false, fmt.Errorf("failed to check serial existence: %w", err)
	}

	return count > 0, nil
}

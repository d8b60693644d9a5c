package assets

import (
	"fmt"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const serialUniqueConstraint = "assets_serial_key"

var assetColumns = []interface{}{"id", "name", "type", "serial", "created_at"}

type AssetsRepository interface {
	PersistAsset(req models.AssetRequest, serial string) (*models.Asset, error)
	GetAsset(id int) (*models.Asset, error)
	GetAssetList() ([]models.Asset, error)
	UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error)
	RemoveAsset(id int) error
}

type assetsRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) AssetsRepository {
	return &assetsRepository{repo: r}
}

func (r *assetsRepository) PersistAsset(req models.AssetRequest, serial string) (*models.Asset, error) {
	query := r.repo.GoquDBWrapper.Insert("assets").
		Rows(goqu.Record{
			"name":   req.Name,
			"type":   req.Type,
			"serial": serial,
		}).
		Returning(assetColumns...)

	var asset models.Asset
	if _, err := query.Executor().ScanStruct(&asset); err != nil {
		if custom_error.IsUniqueViolation(err, serialUniqueConstraint) {
			return nil, custom_error.WrapDBError("Duplicate serial number for asset", "23505")
		}
		return nil, fmt.Errorf("failed to insert asset record: %w", err)
	}

	return &asset, nil
}

func (r *assetsRepository) GetAsset(id int) (*models.Asset, error) {
	var asset models.Asset
	query := r.repo.GoquDBWrapper.
		Select(assetColumns...).
		From("assets").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.ErrNotFound
	}

	return &asset, nil
}

func (r *assetsRepository) GetAssetList() ([]models.Asset, error) {
	var assets []models.Asset
	query := r.repo.GoquDBWrapper.
		Select(assetColumns...).
		From("assets").
		Order(goqu.C("created_at").Desc())

	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return assets, nil
}

func (r *assetsRepository) UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error) {
	record := goqu.Record{}
	if req.Name != nil {
		record["name"] = *req.Name
	}
	if req.Type != nil {
		record["type"] = *req.Type
	}
	if len(record) == 0 {
		return r.GetAsset(id)
	}

	query := r.repo.GoquDBWrapper.Update("assets").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(assetColumns...)

	var asset models.Asset
	found, err := query.Executor().ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("failed to update asset %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.ErrNotFound
	}

	return &asset, nil
}

// RemoveAsset deletes an asset and its assignment history in one
// transaction. The delete is refused while an active assignment exists.
// Only returned rows are cascaded: an active assignment committed after the
// count check survives, so the asset delete fails on its foreign key instead
// of silently destroying the holding record.
func (r *assetsRepository) RemoveAsset(id int) error {
	return repository.WithTransaction(r.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var activeCount int
		_, err := tx.Select(goqu.COUNT("id")).
			From("assignments").
			Where(goqu.Ex{
				"asset_id":    id,
				"returned_at": nil,
			}).
			Executor().
			ScanVal(&activeCount)
		if err != nil {
			return fmt.Errorf("failed to check active assignments for asset %d: %w", id, err)
		}
		if activeCount > 0 {
			return custom_error.ErrAssetInUse
		}

		if _, err := tx.Delete("assignments").
			Where(
				goqu.Ex{"asset_id": id},
				goqu.C("returned_at").IsNotNull(),
			).
			Executor().
			Exec(); err != nil {
			return fmt.Errorf("failed to remove assignment history for asset %d: %w", id, err)
		}

		result, err := tx.Delete("assets").
			Where(goqu.Ex{"id": id}).
			Executor().
			Exec()
		if err != nil {
			if custom_error.IsForeignKeyViolation(err) {
				return custom_error.ErrAssetInUse
			}
			return fmt.Errorf("failed to remove asset %d: %w", id, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.ErrNotFound
		}

		return nil
	})
}

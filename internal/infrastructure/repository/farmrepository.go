package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/mappers"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

const farmSummaryColumns = "farms.farm_id, farms.name, farms.area, farms.area_unit_id, " +
	"area_units.name AS area_unit, farms.farm_state_id, farm_states.name AS farm_state"

// FarmRepositoryImpl implements farm.Repository
type FarmRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FarmMapper
	logger logger.Interface
}

func NewFarmRepository(db *gorm.DB, logger logger.Interface) farm.Repository {
	return &FarmRepositoryImpl{
		db:     db,
		mapper: mappers.NewFarmMapper(),
		logger: logger,
	}
}

type farmSummaryRow struct {
	FarmID      uint
	Name        string
	Area        float64
	AreaUnitID  uint
	AreaUnit    string
	FarmStateID uint
	FarmState   string
	UserRoleID  uint
}

func (row farmSummaryRow) toSummary() *farm.Summary {
	return &farm.Summary{
		FarmID:      row.FarmID,
		Name:        row.Name,
		Area:        row.Area,
		AreaUnitID:  row.AreaUnitID,
		AreaUnit:    row.AreaUnit,
		FarmStateID: row.FarmStateID,
		FarmState:   row.FarmState,
		UserRoleID:  row.UserRoleID,
	}
}

func (r *FarmRepositoryImpl) Create(ctx context.Context, f *farm.Farm) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create farm", "name", f.Name(), "error", err)
		return fmt.Errorf("failed to create farm: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set farm ID: %w", err)
	}

	r.logger.Infow("farm created", "farm_id", model.ID, "name", model.Name)
	return nil
}

func (r *FarmRepositoryImpl) Update(ctx context.Context, f *farm.Farm) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.FarmModel{}).
		Where("farm_id = ?", model.ID).
		Updates(map[string]any{
			"name":          model.Name,
			"area":          model.Area,
			"area_unit_id":  model.AreaUnitID,
			"farm_state_id": model.FarmStateID,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update farm", "farm_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return farm.ErrFarmNotFound
	}
	return nil
}

func (r *FarmRepositoryImpl) GetByID(ctx context.Context, id uint) (*farm.Farm, error) {
	var model models.FarmModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "farm_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get farm", "farm_id", id, "error", err)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FarmRepositoryImpl) GetDetail(ctx context.Context, id uint) (*farm.Summary, error) {
	var rows []farmSummaryRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Table(models.FarmModel{}.TableName()).
		Select(farmSummaryColumns).
		Joins("LEFT JOIN area_units ON area_units.area_unit_id = farms.area_unit_id").
		Joins("LEFT JOIN farm_states ON farm_states.farm_state_id = farms.farm_state_id").
		Where("farms.farm_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get farm detail", "farm_id", id, "error", err)
		return nil, fmt.Errorf("failed to get farm detail: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toSummary(), nil
}

// membershipQuery selects farms reachable through an association matched by
// filter. The caller must ensure filter.UserRoleIDs is not empty.
func (r *FarmRepositoryImpl) membershipQuery(ctx context.Context, filter farm.MembershipFilter) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table(models.UserRoleFarmModel{}.TableName()).
		Joins("JOIN farms ON farms.farm_id = user_role_farm.farm_id").
		Where("user_role_farm.user_role_id IN ?", filter.UserRoleIDs).
		Where("user_role_farm.user_role_farm_state_id = ?", filter.UserRoleFarmStateID).
		Where("farms.farm_state_id = ?", filter.FarmStateID)
}

func (r *FarmRepositoryImpl) ExistsActiveName(ctx context.Context, name string, filter farm.MembershipFilter, excludeID uint) (bool, error) {
	if len(filter.UserRoleIDs) == 0 {
		return false, nil
	}

	query := r.membershipQuery(ctx, filter).Where("farms.name = ?", name)
	if excludeID != 0 {
		query = query.Where("farms.farm_id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check farm name", "name", name, "error", err)
		return false, fmt.Errorf("failed to check farm name: %w", err)
	}
	return count > 0, nil
}

func (r *FarmRepositoryImpl) ListForUserRoles(ctx context.Context, filter farm.MembershipFilter) ([]*farm.Summary, error) {
	if len(filter.UserRoleIDs) == 0 {
		return []*farm.Summary{}, nil
	}

	var rows []farmSummaryRow
	err := r.summaryQuery(ctx, filter).
		Order("farms.farm_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list farms", "error", err)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return mapper.MapSlice(rows, farmSummaryRow.toSummary), nil
}

func (r *FarmRepositoryImpl) GetForUserRoles(ctx context.Context, farmID uint, filter farm.MembershipFilter) (*farm.Summary, error) {
	if len(filter.UserRoleIDs) == 0 {
		return nil, nil
	}

	var rows []farmSummaryRow
	err := r.summaryQuery(ctx, filter).
		Where("farms.farm_id = ?", farmID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get farm", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toSummary(), nil
}

func (r *FarmRepositoryImpl) summaryQuery(ctx context.Context, filter farm.MembershipFilter) *gorm.DB {
	return r.membershipQuery(ctx, filter).
		Select(farmSummaryColumns+", user_role_farm.user_role_id").
		Joins("LEFT JOIN area_units ON area_units.area_unit_id = farms.area_unit_id").
		Joins("LEFT JOIN farm_states ON farm_states.farm_state_id = farms.farm_state_id")
}

func (r *FarmRepositoryImpl) GetAreaUnit(ctx context.Context, id uint) (*farm.AreaUnit, error) {
	var model models.AreaUnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "area_unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get area unit", "area_unit_id", id, "error", err)
		return nil, fmt.Errorf("failed to get area unit: %w", err)
	}
	return toAreaUnit(model), nil
}

func (r *FarmRepositoryImpl) ListAreaUnits(ctx context.Context) ([]*farm.AreaUnit, error) {
	var rows []models.AreaUnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("area_unit_id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list area units", "error", err)
		return nil, fmt.Errorf("failed to list area units: %w", err)
	}
	return mapper.MapSlice(rows, toAreaUnit), nil
}

func toAreaUnit(m models.AreaUnitModel) *farm.AreaUnit {
	return &farm.AreaUnit{ID: m.ID, Name: m.Name, Abbreviation: m.Abbreviation}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/mappers"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

// PlotRepositoryImpl implements plot.Repository
type PlotRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlotMapper
	logger logger.Interface
}

func NewPlotRepository(db *gorm.DB, logger logger.Interface) plot.Repository {
	return &PlotRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlotMapper(),
		logger: logger,
	}
}

type plotDetailRow struct {
	PlotID            uint
	Name              string
	CoffeeVarietyID   uint
	CoffeeVarietyName string
	Latitude          float64
	Longitude         float64
	Altitude          float64
	FarmID            uint
}

func (row plotDetailRow) toDetail() *plot.Detail {
	return &plot.Detail{
		PlotID:            row.PlotID,
		Name:              row.Name,
		CoffeeVarietyID:   row.CoffeeVarietyID,
		CoffeeVarietyName: row.CoffeeVarietyName,
		Location: plot.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Altitude:  row.Altitude,
		},
		FarmID: row.FarmID,
	}
}

func (r *PlotRepositoryImpl) Create(ctx context.Context, p *plot.Plot) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plot", "farm_id", p.FarmID(), "name", p.Name(), "error", err)
		return fmt.Errorf("failed to create plot: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plot ID: %w", err)
	}

	r.logger.Infow("plot created", "plot_id", model.ID, "farm_id", model.FarmID)
	return nil
}

func (r *PlotRepositoryImpl) Update(ctx context.Context, p *plot.Plot) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PlotModel{}).
		Where("plot_id = ?", model.ID).
		Updates(map[string]any{
			"name":              model.Name,
			"latitude":          model.Latitude,
			"longitude":         model.Longitude,
			"altitude":          model.Altitude,
			"coffee_variety_id": model.CoffeeVarietyID,
			"plot_state_id":     model.PlotStateID,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plot", "plot_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plot.ErrPlotNotFound
	}
	return nil
}

func (r *PlotRepositoryImpl) GetByIDInState(ctx context.Context, id, plotStateID uint) (*plot.Plot, error) {
	return r.first(ctx, "plot_id = ? AND plot_state_id = ?", id, plotStateID)
}

func (r *PlotRepositoryImpl) FindByFarmAndName(ctx context.Context, farmID uint, name string, plotStateID uint) (*plot.Plot, error) {
	return r.first(ctx, "farm_id = ? AND name = ? AND plot_state_id = ?", farmID, name, plotStateID)
}

func (r *PlotRepositoryImpl) first(ctx context.Context, query string, args ...any) (*plot.Plot, error) {
	var model models.PlotModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).Order("plot_id").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plot", "error", err)
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlotRepositoryImpl) ExistsByFarmAndName(ctx context.Context, farmID uint, name string, plotStateID, excludeID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PlotModel{}).
		Where("farm_id = ? AND name = ? AND plot_state_id = ?", farmID, name, plotStateID)
	if excludeID != 0 {
		query = query.Where("plot_id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check plot name", "farm_id", farmID, "name", name, "error", err)
		return false, fmt.Errorf("failed to check plot name: %w", err)
	}
	return count > 0, nil
}

func (r *PlotRepositoryImpl) detailQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table(models.PlotModel{}.TableName()).
		Select("plots.plot_id, plots.name, plots.coffee_variety_id, " +
			"coffee_varieties.name AS coffee_variety_name, " +
			"plots.latitude, plots.longitude, plots.altitude, plots.farm_id").
		Joins("LEFT JOIN coffee_varieties ON coffee_varieties.coffee_variety_id = plots.coffee_variety_id")
}

func (r *PlotRepositoryImpl) ListByFarm(ctx context.Context, farmID, plotStateID uint) ([]*plot.Detail, error) {
	var rows []plotDetailRow
	err := r.detailQuery(ctx).
		Where("plots.farm_id = ? AND plots.plot_state_id = ?", farmID, plotStateID).
		Order("plots.plot_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list plots", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}
	return mapper.MapSlice(rows, plotDetailRow.toDetail), nil
}

func (r *PlotRepositoryImpl) GetDetail(ctx context.Context, id, plotStateID uint) (*plot.Detail, error) {
	var rows []plotDetailRow
	err := r.detailQuery(ctx).
		Where("plots.plot_id = ? AND plots.plot_state_id = ?", id, plotStateID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get plot detail", "plot_id", id, "error", err)
		return nil, fmt.Errorf("failed to get plot detail: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDetail(), nil
}

func (r *PlotRepositoryImpl) GetCoffeeVariety(ctx context.Context, id uint) (*plot.CoffeeVariety, error) {
	var model models.CoffeeVarietyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "coffee_variety_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get coffee variety", "coffee_variety_id", id, "error", err)
		return nil, fmt.Errorf("failed to get coffee variety: %w", err)
	}
	return toCoffeeVariety(model), nil
}

func (r *PlotRepositoryImpl) ListCoffeeVarieties(ctx context.Context) ([]*plot.CoffeeVariety, error) {
	var rows []models.CoffeeVarietyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("coffee_variety_id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list coffee varieties", "error", err)
		return nil, fmt.Errorf("failed to list coffee varieties: %w", err)
	}
	return mapper.MapSlice(rows, toCoffeeVariety), nil
}

func toCoffeeVariety(m models.CoffeeVarietyModel) *plot.CoffeeVariety {
	return &plot.CoffeeVariety{ID: m.ID, Name: m.Name}
}

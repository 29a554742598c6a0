package migration

import (
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// SeedData is the shape of seeds.yaml.
type SeedData struct {
	States struct {
		Farm         []string `yaml:"farm"`
		Plot         []string `yaml:"plot"`
		UserRoleFarm []string `yaml:"user_role_farm"`
	} `yaml:"states"`
	AreaUnits []struct {
		Name         string `yaml:"name"`
		Abbreviation string `yaml:"abbreviation"`
	} `yaml:"area_units"`
	CoffeeVarieties []string `yaml:"coffee_varieties"`
}

// ParseSeedData decodes a seed document.
func ParseSeedData(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Seeder inserts missing reference rows. Existing rows are matched by name
// and left untouched.
type Seeder struct {
	data   []byte
	logger logger.Interface
}

func NewSeeder(log logger.Interface) *Seeder {
	return &Seeder{data: seedsYAML, logger: log}
}

// NewSeederFromYAML seeds from raw instead of the embedded seeds.yaml.
func NewSeederFromYAML(raw []byte, log logger.Interface) *Seeder {
	return &Seeder{data: raw, logger: log}
}

func (s *Seeder) Seed(db *gorm.DB) error {
	data, err := ParseSeedData(s.data)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range data.States.Farm {
			if err := tx.FirstOrCreate(&models.FarmStateModel{}, models.FarmStateModel{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed farm state %q: %w", name, err)
			}
		}
		for _, name := range data.States.Plot {
			if err := tx.FirstOrCreate(&models.PlotStateModel{}, models.PlotStateModel{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed plot state %q: %w", name, err)
			}
		}
		for _, name := range data.States.UserRoleFarm {
			if err := tx.FirstOrCreate(&models.UserRoleFarmStateModel{}, models.UserRoleFarmStateModel{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed user role farm state %q: %w", name, err)
			}
		}
		for _, unit := range data.AreaUnits {
			row := models.AreaUnitModel{}
			if err := tx.Where(models.AreaUnitModel{Name: unit.Name}).
				Attrs(models.AreaUnitModel{Abbreviation: unit.Abbreviation}).
				FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("failed to seed area unit %q: %w", unit.Name, err)
			}
		}
		for _, name := range data.CoffeeVarieties {
			if err := tx.FirstOrCreate(&models.CoffeeVarietyModel{}, models.CoffeeVarietyModel{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed coffee variety %q: %w", name, err)
			}
		}

		s.logger.Infow("reference data seeded",
			"farm_states", len(data.States.Farm),
			"plot_states", len(data.States.Plot),
			"user_role_farm_states", len(data.States.UserRoleFarm),
			"area_units", len(data.AreaUnits),
			"coffee_varieties", len(data.CoffeeVarieties))
		return nil
	})
}

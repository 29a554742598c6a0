package models

// All returns every persistence model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&FarmStateModel{},
		&PlotStateModel{},
		&UserRoleFarmStateModel{},
		&AreaUnitModel{},
		&CoffeeVarietyModel{},
		&FarmModel{},
		&PlotModel{},
		&UserRoleFarmModel{},
	}
}

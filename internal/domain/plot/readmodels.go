package plot

// CoffeeVariety is a row of the coffee_varieties reference table.
type CoffeeVariety struct {
	ID   uint
	Name string
}

// Detail is a plot joined with its variety name.
type Detail struct {
	PlotID            uint
	Name              string
	CoffeeVarietyID   uint
	CoffeeVarietyName string
	Location          Location
	FarmID            uint
}

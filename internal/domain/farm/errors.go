package farm

import "errors"

var (
	ErrFarmNotFound = errors.New("farm not found")

	ErrNameRequired = errors.New("El nombre de la finca no puede estar vacío")

	ErrNameTooLong = errors.New("El nombre de la finca no puede tener más de 50 caracteres")

	ErrAreaNotPositive = errors.New("El área de la finca debe ser un número positivo mayor que cero")

	ErrAreaTooLarge = errors.New("El área de la finca no puede exceder las 10,000 unidades de medida")

	ErrAreaUnitRequired = errors.New("Unidad de medida no válida")
)

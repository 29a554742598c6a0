package plot

import "errors"

var (
	ErrPlotNotFound = errors.New("plot not found")

	ErrNameRequired = errors.New("El nombre del lote no puede estar vacío")

	ErrNameTooLong = errors.New("El nombre del lote no puede tener más de 100 caracteres")

	ErrLatitudeOutOfRange = errors.New("La latitud debe estar entre -90 y 90")

	ErrLongitudeOutOfRange = errors.New("La longitud debe estar entre -180 y 180")

	ErrAltitudeOutOfRange = errors.New("La altitud debe estar entre 0 y 3000 metros")
)

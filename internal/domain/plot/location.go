package plot

// Location is the geographic position of a plot. Altitude is in metres.
type Location struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}
	if l.Altitude < 0 || l.Altitude > 3000 {
		return ErrAltitudeOutOfRange
	}
	return nil
}

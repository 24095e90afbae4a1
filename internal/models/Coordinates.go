package models

import "fmt"

// Coordinates is a latitude/longitude pair resolved by the geocoder.
type Coordinates struct {
	Lat float64 `json:"lat" example:"39.7392"`
	Lon float64 `json:"lon" example:"-104.9903"`
}

func (c Coordinates) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}

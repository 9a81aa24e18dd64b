package geofence

// Point é uma coordenada geográfica em graus decimais (WGS84).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geofence delimita um canteiro por círculo de centro e raio em metros.
type Geofence struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Center       Point   `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
	Address      string  `json:"address"`
}

// CreateInput reúne os campos aceitos na criação de uma geofence.
type CreateInput struct {
	Name         string
	Center       *Point
	RadiusMeters float64
	Address      string
}

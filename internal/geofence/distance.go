package geofence

import "math"

// raio médio da Terra em metros.
const earthRadiusMeters = 6371000.0

// Distance calcula a distância haversine entre dois pontos, em metros.
// A métrica é esférica, então o comportamento na borda do raio é
// determinístico para qualquer rumo.
func Distance(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Contains responde se o ponto está dentro da geofence.
// A borda é inclusiva: distância igual ao raio conta como dentro.
func Contains(point Point, fence Geofence) bool {
	return Distance(point, fence.Center) <= fence.RadiusMeters
}

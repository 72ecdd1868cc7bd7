package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// ValidCoordinate reports whether lat/lng are finite and inside the WGS84 range
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}

// BoundingRect returns the smallest lat/lng rectangle containing every point.
// An empty input yields s2.EmptyRect().
func BoundingRect(lats, lngs []float64) s2.Rect {
	rect := s2.EmptyRect()
	for i := range lats {
		if i >= len(lngs) {
			break
		}
		rect = rect.AddPoint(s2.LatLngFromDegrees(lats[i], lngs[i]))
	}
	return rect
}

// RectDegrees unpacks a rectangle into min/max latitude and longitude in degrees
func RectDegrees(rect s2.Rect) (minLat, maxLat, minLng, maxLng float64) {
	lo := rect.Lo()
	hi := rect.Hi()
	return lo.Lat.Degrees(), hi.Lat.Degrees(), lo.Lng.Degrees(), hi.Lng.Degrees()
}

// CrossesAntimeridian reports whether the longitude interval wraps past ±180°.
// In that case the minimum longitude returned by RectDegrees is greater than the maximum.
func CrossesAntimeridian(rect s2.Rect) bool {
	return rect.Lng.IsInverted()
}

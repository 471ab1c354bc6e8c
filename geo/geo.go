// Package geo provides the small set of geometric primitives the guidance
// core needs: points, polylines, bearings, and distances. It deliberately
// stops short of a general-purpose geometry library — that lives upstream
// in the map-matching/search collaborators excluded by the spec.
package geo

import "math"

const earthRadiusMeters = 6371000.0

// Point is a geographic coordinate, longitude first to match the teacher's
// GeoJSON-flavored [lon, lat] convention.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Polyline is an ordered sequence of points describing a traversed shape.
type Polyline []Point

// Concat appends other to p, skipping other's first point when it
// duplicates p's last point (the usual case when merging adjacent steps).
func (p Polyline) Concat(other Polyline) Polyline {
	if len(other) == 0 {
		return p
	}
	if len(p) == 0 {
		return append(Polyline{}, other...)
	}
	out := append(Polyline{}, p...)
	if out[len(out)-1] == other[0] {
		return append(out, other[1:]...)
	}
	return append(out, other...)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Bearing returns the initial compass bearing in degrees [0,360) travelling
// from a to b. North is 0, east is 90, clockwise positive.
func Bearing(a, b Point) float64 {
	lat1, lat2 := toRadians(a.Lat), toRadians(b.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	theta := math.Atan2(y, x)

	deg := math.Mod(toDegrees(theta)+360, 360)
	return deg
}

// HaversineMeters returns the great-circle distance between a and b.
func HaversineMeters(a, b Point) float64 {
	lat1, lat2 := toRadians(a.Lat), toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// NormalizeBearingDelta reduces a bearing difference (b-a, both in
// [0,360)) to the signed range (-180,180], positive meaning clockwise
// (i.e. a right turn).
func NormalizeBearingDelta(delta float64) float64 {
	for delta > 180 {
		delta -= 360
	}
	for delta <= -180 {
		delta += 360
	}
	return delta
}

// TurnAngle returns the signed turn angle at a node where the vehicle
// arrives along a bearing of inBearing and departs along outBearing.
// 0 is straight ahead, positive is to the right, negative to the left,
// and ±180 is a u-turn. This is the signed difference from the arrival
// direction to the departure direction, which is the quantity the turn
// classifier bins (spec.md §4.3 rule 5).
func TurnAngle(inBearing, outBearing float64) float64 {
	return NormalizeBearingDelta(outBearing - inBearing)
}

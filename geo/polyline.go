package geo

import "strings"

// EncodePolyline encodes points using the Google polyline algorithm at the
// given precision (5 or 6 decimal digits), matching the ShapeFormat values
// ("polyline5", "polyline6") the upstream routing service already speaks.
func EncodePolyline(points Polyline, precision int) string {
	factor := 1.0
	for i := 0; i < precision; i++ {
		factor *= 10
	}

	var sb strings.Builder
	var prevLat, prevLon int64

	for _, p := range points {
		lat := round(p.Lat * factor)
		lon := round(p.Lon * factor)

		encodeSigned(&sb, lat-prevLat)
		encodeSigned(&sb, lon-prevLon)

		prevLat, prevLon = lat, lon
	}
	return sb.String()
}

func round(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

func encodeSigned(sb *strings.Builder, value int64) {
	shifted := value << 1
	if value < 0 {
		shifted = ^shifted
	}
	for shifted >= 0x20 {
		sb.WriteByte(byte((0x20|(shifted&0x1f))+63))
		shifted >>= 5
	}
	sb.WriteByte(byte(shifted + 63))
}

// DecodePolyline decodes a Google polyline-encoded string at the given
// precision back into points.
func DecodePolyline(encoded string, precision int) Polyline {
	factor := 1.0
	for i := 0; i < precision; i++ {
		factor *= 10
	}

	var points Polyline
	var lat, lon int64
	index := 0

	for index < len(encoded) {
		dLat, next := decodeSigned(encoded, index)
		index = next
		lat += dLat

		dLon, next2 := decodeSigned(encoded, index)
		index = next2
		lon += dLon

		points = append(points, Point{
			Lat: float64(lat) / factor,
			Lon: float64(lon) / factor,
		})
	}
	return points
}

func decodeSigned(encoded string, index int) (int64, int) {
	var result int64
	var shift uint
	for {
		b := int64(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), index
	}
	return result >> 1, index
}

package geo

import geojson "github.com/paulmach/go.geojson"

// ToGeoJSON renders a polyline as a GeoJSON LineString geometry, the shape
// the downstream renderer consumes for per-step geometry (spec.md §6).
// A single-point polyline degrades to a GeoJSON Point rather than an
// ill-defined one-vertex LineString.
func ToGeoJSON(p Polyline) *geojson.Geometry {
	if len(p) == 1 {
		return geojson.NewPointGeometry([]float64{p[0].Lon, p[0].Lat})
	}

	coords := make([][]float64, len(p))
	for i, pt := range p {
		coords[i] = []float64{pt.Lon, pt.Lat}
	}
	return geojson.NewLineStringGeometry(coords)
}

// FromGeoJSON extracts a polyline from a GeoJSON Point or LineString
// geometry. Other geometry types return an empty polyline.
func FromGeoJSON(g *geojson.Geometry) Polyline {
	switch {
	case g == nil:
		return nil
	case g.IsPoint():
		return Polyline{{Lon: g.Point[0], Lat: g.Point[1]}}
	case g.IsLineString():
		out := make(Polyline, len(g.LineString))
		for i, c := range g.LineString {
			out[i] = Point{Lon: c[0], Lat: c[1]}
		}
		return out
	default:
		return nil
	}
}

package filter

import (
	"database/sql"
	"fmt"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
)

// distanceSQL renders the spherical law of cosines in kilometers. The cosine
// is clamped to [-1, 1] so acos never fails on identical points.
func distanceSQL(latColumn, lngColumn, latParam, lngParam string) string {
	return fmt.Sprintf(
		"(%g * acos(LEAST(1, GREATEST(-1, cos(radians(%s)) * cos(radians(%s)) * cos(radians(%s) - radians(%s)) + sin(radians(%s)) * sin(radians(%s))))))",
		domain.EarthRadiusKm,
		latParam, latColumn, lngColumn, lngParam, latParam, latColumn,
	)
}

// Radius builds "distance(caller, row) <= @alias". It is a no-op only when
// the caller coordinates are missing.
func Radius(alias, latColumn, lngColumn string, lat, lng *float64, radiusKm float64) *Predicate {
	if lat == nil || lng == nil {
		return noop(alias)
	}
	latName, lngName := alias+"_lat", alias+"_lng"
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s <= @%s", distanceSQL(latColumn, lngColumn, "@"+latName, "@"+lngName), alias),
		args: []any{
			sql.Named(latName, *lat),
			sql.Named(lngName, *lng),
			sql.Named(alias, radiusKm),
		},
	}
}

// DistanceColumn renders the distance expression with positional arguments,
// for projections and ordering.
func DistanceColumn(latColumn, lngColumn string, lat, lng float64) (string, []any) {
	return distanceSQL(latColumn, lngColumn, "?", "?"), []any{lat, lng, lat}
}

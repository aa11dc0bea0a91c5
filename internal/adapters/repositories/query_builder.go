package repositories

import (
	"fmt"
	"rental-commute-service/internal/domain"
	"strings"
)

// Dialect selects the placeholder style of the underlying driver:
// pgx wants $1..$N, sqlite wants ?.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

func (d Dialect) placeholder(n int) string {
	if d == DialectSQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// queryBuilder accumulates conjunctive WHERE conditions and their
// arguments. With positional (?) placeholders argument order must
// match textual order, so callers bind arguments in the order their
// SQL fragments appear in the final statement.
type queryBuilder struct {
	dialect    Dialect
	conditions []string
	args       []any
	argID      int
}

func newQueryBuilder(d Dialect) *queryBuilder {
	return &queryBuilder{dialect: d, argID: 1}
}

// arg binds a value and returns its placeholder.
func (qb *queryBuilder) arg(v any) string {
	ph := qb.dialect.placeholder(qb.argID)
	qb.args = append(qb.args, v)
	qb.argID++
	return ph
}

// addCondition appends "column op placeholder" and binds its value.
func (qb *queryBuilder) addCondition(column, op string, v any) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s %s %s", column, op, qb.arg(v)))
}

func (qb *queryBuilder) addFloatBounds(column string, min, max *float64) {
	if min != nil {
		qb.addCondition(column, ">=", *min)
	}
	if max != nil {
		qb.addCondition(column, "<=", *max)
	}
}

func (qb *queryBuilder) addIntBounds(column string, min, max *int) {
	if min != nil {
		qb.addCondition(column, ">=", *min)
	}
	if max != nil {
		qb.addCondition(column, "<=", *max)
	}
}

func (qb *queryBuilder) whereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// haversineExpr emits the great-circle distance (kilometers) from the
// searcher's location to each row, computed inside the query so the
// store can order and paginate before materializing rows. Mirrors
// domain.Coordinates.DistanceKm, same Earth radius.
func (qb *queryBuilder) haversineExpr(lat, lon float64) string {
	latA := qb.arg(lat)
	latB := qb.arg(lat)
	lonA := qb.arg(lon)
	return fmt.Sprintf(
		"%g * 2 * asin(sqrt("+
			"pow(sin(radians(latitude - %s) / 2), 2) + "+
			"cos(radians(%s)) * cos(radians(latitude)) * "+
			"pow(sin(radians(longitude - %s) / 2), 2)))",
		domain.EarthRadiusKm, latA, latB, lonA,
	)
}

// Column expression for the bath count filter and sort.
const bathCountExpr = "(full_baths + half_baths / 2.0)"

// sortColumn maps a plain-attribute sort key to its column expression.
// Distance and commute keys never reach here; they order by the SQL
// distance column. Keys are validated upstream, so anything else is a
// programming error surfaced as list_price ordering.
func sortColumn(k domain.SortKey) string {
	switch k {
	case domain.SortByBeds:
		return "beds"
	case domain.SortByBaths:
		return bathCountExpr
	default:
		return "list_price"
	}
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/obs"
	"rental-commute-service/internal/ports"
)

// SQL implementation of the ListingRepository port, shared by the
// Postgres and SQLite stores (the query differs only in placeholder
// style; both expose the same math functions for the haversine).
type SQLListingRepository struct {
	DB      *sql.DB
	dialect Dialect
}

func NewPostgresListingRepository(db *sql.DB) *SQLListingRepository {
	return &SQLListingRepository{DB: db, dialect: DialectPostgres}
}

func NewSQLiteListingRepository(db *sql.DB) *SQLListingRepository {
	return &SQLListingRepository{DB: db, dialect: DialectSQLite}
}

const listingColumns = `id, formatted_address, city, region, list_price, beds,
		full_baths, half_baths, property_url, primary_photo, latitude, longitude`

// SearchListings returns one ordered page for the region.
//
// Distance and commute sort keys compute the haversine distance inside
// the query so ordering and LIMIT/OFFSET happen store-side. For plain
// attribute sorts the distance is computed in application code, but
// only for the already-limited page. Either way every returned row
// carries a populated DistanceKm.
func (s *SQLListingRepository) SearchListings(
	ctx context.Context,
	q ports.ListingSearch,
) (_ []*domain.Listing, err error) {
	defer obs.Time(ctx, "repo.SearchListings")(&err)

	if s.DB == nil {
		return nil, errors.New("listing repository: db is nil")
	}
	if q.Region == "" {
		return nil, errors.New("search listings: region must not be empty")
	}
	if q.Page < 1 || q.PageSize < 1 {
		return nil, fmt.Errorf("search listings: invalid page bounds page=%d page_size=%d", q.Page, q.PageSize)
	}

	qb := newQueryBuilder(s.dialect)

	// The distance expression binds arguments and appears in the SELECT
	// list, so it must be built before any WHERE condition.
	distanceInSQL := q.SortBy.UsesDistance()
	selectList := listingColumns
	if distanceInSQL {
		selectList += ",\n\t\t" + qb.haversineExpr(q.UserLocation.Lat, q.UserLocation.Lon) + " AS distance_km"
	}

	qb.addCondition("region", "=", q.Region)
	qb.addFloatBounds("list_price", q.Filters.MinPrice, q.Filters.MaxPrice)
	qb.addIntBounds("beds", q.Filters.MinBeds, q.Filters.MaxBeds)
	qb.addFloatBounds(bathCountExpr, q.Filters.MinBaths, q.Filters.MaxBaths)

	orderBy := sortColumn(q.SortBy)
	if distanceInSQL {
		orderBy = "distance_km"
	}
	direction := "ASC"
	if !q.Ascending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM listings
	%s
	ORDER BY %s %s
	LIMIT %s OFFSET %s;
	`, selectList, qb.whereClause(), orderBy, direction,
		qb.arg(q.PageSize), qb.arg((q.Page-1)*q.PageSize))

	rows, err := s.DB.QueryContext(ctx, query, qb.args...)
	if err != nil {
		return nil, fmt.Errorf("search listings: query listings table: %w", err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0, q.PageSize)
	for rows.Next() {
		l := &domain.Listing{}
		dest := []any{
			&l.ID, &l.FormattedAddress, &l.City, &l.Region, &l.ListPrice, &l.Beds,
			&l.FullBaths, &l.HalfBaths, &l.PropertyURL, &l.PrimaryPhoto,
			&l.Location.Lat, &l.Location.Lon,
		}
		if distanceInSQL {
			dest = append(dest, &l.DistanceKm)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("search listings: scan row: %w", err)
		}
		if !distanceInSQL {
			l.DistanceKm = q.UserLocation.DistanceKm(l.Location)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search listings: row iteration: %w", err)
	}

	return listings, nil
}

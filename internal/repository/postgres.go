package repository

import (
	"context"
	"fmt"

	"jp-address-api/internal/gazetteer"
	"jp-address-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// DefaultTable is the table the importer writes to when none is configured.
const DefaultTable = "locations"

// Repository serves the gazetteer out of PostgreSQL.
type Repository struct {
	db     *pgxpool.Pool
	table  string
	quoted string
}

// NewRepository creates a new PostgreSQL repository reading from table.
func NewRepository(db *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{db: db, table: table, quoted: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the gazetteer table and its indexes if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		id BIGSERIAL PRIMARY KEY,
		prefecture VARCHAR(255) NOT NULL,
		municipality VARCHAR(255) NOT NULL,
		address_1 VARCHAR(255) NOT NULL DEFAULT '',
		address_2 VARCHAR(255) NOT NULL DEFAULT '',
		block_lot VARCHAR(255) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s (prefecture, municipality);
	CREATE INDEX IF NOT EXISTS %[3]s ON %[1]s USING GIST (geom);
	`, r.quoted, pq.QuoteIdentifier(r.table+"_names_idx"), pq.QuoteIdentifier(r.table+"_geom_idx"))

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ImportLocations bulk inserts rows with COPY and returns the number written.
func (r *Repository) ImportLocations(ctx context.Context, rows []models.Location) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{r.table},
		[]string{"prefecture", "municipality", "address_1", "address_2", "block_lot", "geom"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", row.Longitude, row.Latitude) // PostGIS format: lon lat
			return []any{row.Prefecture, row.City, row.Town, row.Koaza, row.BlockLot, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}
	return n, nil
}

// CountLocations returns the number of imported rows.
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.quoted).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count records: %w", err)
	}
	return count, nil
}

// ListCities returns the cities of prefecture in import order, each with the centroid of its rows.
func (r *Repository) ListCities(ctx context.Context, prefecture string) ([]models.City, error) {
	sql := `
		SELECT
			municipality,
			AVG(ST_Y(geom::geometry)) AS latitude,
			AVG(ST_X(geom::geometry)) AS longitude
		FROM ` + r.quoted + `
		WHERE prefecture = $1
		GROUP BY municipality
		ORDER BY MIN(id)
	`
	op := "list cities " + prefecture

	rows, err := r.db.Query(ctx, sql, prefecture)
	if err != nil {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorFetch, Op: op, Err: err}
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var (
			city     models.City
			lat, lon *float64
		)
		if err := rows.Scan(&city.Name, &lat, &lon); err != nil {
			return nil, &gazetteer.Error{Kind: gazetteer.ErrorDeserialize, Op: op, Err: err}
		}
		city.Coordinate = coordinate(lat, lon)
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorFetch, Op: op, Err: err}
	}
	if len(cities) == 0 {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorNotFound, Op: op}
	}
	return cities, nil
}

// ListTowns returns the towns of city in import order, each with the centroid of its rows.
func (r *Repository) ListTowns(ctx context.Context, prefecture, city string) ([]models.Town, error) {
	sql := `
		SELECT
			address_1,
			AVG(ST_Y(geom::geometry)) AS latitude,
			AVG(ST_X(geom::geometry)) AS longitude
		FROM ` + r.quoted + `
		WHERE prefecture = $1 AND municipality = $2 AND address_1 <> ''
		GROUP BY address_1
		ORDER BY MIN(id)
	`
	op := "list towns " + prefecture + city

	rows, err := r.db.Query(ctx, sql, prefecture, city)
	if err != nil {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorFetch, Op: op, Err: err}
	}
	defer rows.Close()

	var towns []models.Town
	for rows.Next() {
		var (
			town     models.Town
			lat, lon *float64
		)
		if err := rows.Scan(&town.Name, &lat, &lon); err != nil {
			return nil, &gazetteer.Error{Kind: gazetteer.ErrorDeserialize, Op: op, Err: err}
		}
		town.Coordinate = coordinate(lat, lon)
		towns = append(towns, town)
	}
	if err := rows.Err(); err != nil {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorFetch, Op: op, Err: err}
	}
	if len(towns) == 0 {
		return nil, &gazetteer.Error{Kind: gazetteer.ErrorNotFound, Op: op}
	}
	return towns, nil
}

func coordinate(lat, lon *float64) *models.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lon}
}

package postgres

import (
	"context"
	"database/sql"

	"pet-grooming-api/internal/domain/locations"
)

const locationColumns = `
	id, groomer_id, business_name,
	address, city, state, zip,
	email, phone_number, lat, lng`

type LocationsRepo struct {
	db *sql.DB
}

func NewLocationsRepo(db *sql.DB) *LocationsRepo {
	return &LocationsRepo{db: db}
}

func (r *LocationsRepo) FindAll(ctx context.Context) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+locationColumns+`
		FROM locations
		ORDER BY business_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

func (r *LocationsRepo) FindByGroomerID(ctx context.Context, groomerID string) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+locationColumns+`
		FROM locations
		WHERE groomer_id = $1
	`, groomerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

func (r *LocationsRepo) Insert(ctx context.Context, loc locations.Location) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		INSERT INTO locations (
			id, groomer_id, business_name,
			address, city, state, zip,
			email, phone_number, lat, lng
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+locationColumns,
		loc.ID,
		loc.GroomerID,
		loc.BusinessName,
		loc.Address,
		loc.City,
		loc.State,
		loc.Zip,
		loc.Email,
		loc.PhoneNumber,
		loc.Lat,
		loc.Lng,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

// Update reemplaza el objeto completo de todas las filas del groomer del
// path (el schema no fuerza una sola fila por groomer).
func (r *LocationsRepo) Update(ctx context.Context, groomerID string, loc locations.Location) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		UPDATE locations
		SET
			groomer_id = $2,
			business_name = $3,
			address = $4,
			city = $5,
			state = $6,
			zip = $7,
			email = $8,
			phone_number = $9,
			lat = $10,
			lng = $11
		WHERE groomer_id = $1
		RETURNING `+locationColumns,
		groomerID,
		loc.GroomerID,
		loc.BusinessName,
		loc.Address,
		loc.City,
		loc.State,
		loc.Zip,
		loc.Email,
		loc.PhoneNumber,
		loc.Lat,
		loc.Lng,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

func (r *LocationsRepo) DeleteByGroomerID(ctx context.Context, groomerID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM locations
		WHERE groomer_id = $1
	`, groomerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanLocations(rows *sql.Rows) ([]locations.Location, error) {
	out := make([]locations.Location, 0)
	for rows.Next() {
		var loc locations.Location
		if err := rows.Scan(
			&loc.ID,
			&loc.GroomerID,
			&loc.BusinessName,
			&loc.Address,
			&loc.City,
			&loc.State,
			&loc.Zip,
			&loc.Email,
			&loc.PhoneNumber,
			&loc.Lat,
			&loc.Lng,
		); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"

	"pet-grooming-api/internal/domain/pets"
)

const petColumns = `id, owner_id, name, shots, type, img`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

// FindByIDAndOwner lleva ambos predicados en la misma query: un pet id
// adivinado no alcanza para ver el pet de otro owner.
func (r *PetsRepo) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) ([]pets.Pet, error) {
	// El id nunca se inserta: lo asigna la secuencia de la tabla.
	rows, err := r.db.QueryContext(ctx, `
		INSERT INTO pets (owner_id, name, shots, type, img)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+petColumns,
		p.OwnerID,
		p.Name,
		p.Shots,
		p.Type,
		p.Img,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) Update(ctx context.Context, id int64, ownerID string, p pets.Pet) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		UPDATE pets
		SET
			name = $3,
			shots = $4,
			type = $5,
			img = $6
		WHERE id = $1 AND owner_id = $2
		RETURNING `+petColumns,
		id,
		ownerID,
		p.Name,
		p.Shots,
		p.Type,
		p.Img,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64, ownerID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Shots,
			&p.Type,
			&p.Img,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

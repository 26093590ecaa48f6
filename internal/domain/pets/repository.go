package pets

import "context"

// Repository es el port de persistencia de pets. Los lookups por id van
// siempre con ambos predicados (id + ownerId) en una sola query, así un id
// numérico adivinado nunca cruza de owner. Insert y Update devuelven las
// filas resultantes (RETURNING *); Delete devuelve el count afectado.
// El slice vacío es la única señal de not-found; el store no erra por
// "cero filas".
type Repository interface {
	FindByOwnerID(ctx context.Context, ownerID string) ([]Pet, error)
	FindByIDAndOwner(ctx context.Context, id int64, ownerID string) ([]Pet, error)
	Insert(ctx context.Context, p Pet) ([]Pet, error)
	Update(ctx context.Context, id int64, ownerID string, p Pet) ([]Pet, error)
	Delete(ctx context.Context, id int64, ownerID string) (int64, error)
}

package locations

import "context"

// Repository es el port de persistencia de locations. Insert y Update
// devuelven las filas resultantes (semántica RETURNING *); Delete devuelve
// el count de filas afectadas, que es el dato autoritativo para el handler.
// Un lookup sin filas devuelve slice vacío, nunca error: el slice vacío es
// la única señal de not-found.
type Repository interface {
	FindAll(ctx context.Context) ([]Location, error)
	FindByGroomerID(ctx context.Context, groomerID string) ([]Location, error)
	Insert(ctx context.Context, loc Location) ([]Location, error)
	Update(ctx context.Context, groomerID string, loc Location) ([]Location, error)
	DeleteByGroomerID(ctx context.Context, groomerID string) (int64, error)
}

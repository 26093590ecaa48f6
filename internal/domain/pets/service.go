package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Fields son los campos mutables de un pet. Ni id ni ownerId viven acá:
// el id lo asigna el store y el owner sale siempre del path autenticado,
// así el cliente no puede inyectar ninguno de los dos.
type Fields struct {
	Name  string
	Shots bool
	Type  string
	Img   string
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.FindByOwnerID(ctx, ownerID)
}

// GetByID resuelve un pet puntual con una sola query (id + owner), en vez
// de traer todo el set del owner y filtrar client-side.
func (s *Service) GetByID(ctx context.Context, ownerID string, petID int64) ([]Pet, error) {
	return s.repo.FindByIDAndOwner(ctx, petID, ownerID)
}

func (s *Service) Create(ctx context.Context, ownerID string, in Fields) ([]Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}

	p := Pet{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(in.Name),
		Shots:   in.Shots,
		Type:    strings.TrimSpace(in.Type),
		Img:     strings.TrimSpace(in.Img),
	}

	return s.repo.Insert(ctx, p)
}

// Update reemplaza los campos mutables del pet, scoped por id y owner.
func (s *Service) Update(ctx context.Context, ownerID string, petID int64, in Fields) ([]Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.FindByIDAndOwner(ctx, petID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrNotFound
	}

	p := Pet{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(in.Name),
		Shots:   in.Shots,
		Type:    strings.TrimSpace(in.Type),
		Img:     strings.TrimSpace(in.Img),
	}

	return s.repo.Update(ctx, petID, ownerID, p)
}

// Delete borra por id + owner y devuelve el count. El pre-check existe para
// distinguir 404 de 200; un count cero después del pre-check es un 500 del
// handler, porque la existencia ya estaba confirmada.
func (s *Service) Delete(ctx context.Context, ownerID string, petID int64) (int64, error) {
	existing, err := s.repo.FindByIDAndOwner(ctx, petID, ownerID)
	if err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		return 0, ErrNotFound
	}

	return s.repo.Delete(ctx, petID, ownerID)
}

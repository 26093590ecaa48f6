package locations

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("location not found")
	ErrAlreadyExists = errors.New("location already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Fields es el set de campos mutables de un location (todo menos id).
// El id nunca viene del cliente: se genera en Create y no se toca después.
type Fields struct {
	GroomerID    string
	BusinessName string
	Address      string
	City         string
	State        string
	Zip          string
	Email        string
	PhoneNumber  string
	Lat          float64
	Lng          float64
}

func (s *Service) ListAll(ctx context.Context) ([]Location, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) ListByGroomer(ctx context.Context, groomerID string) ([]Location, error) {
	return s.repo.FindByGroomerID(ctx, groomerID)
}

// Create inserta un location nuevo keyed por su natural key (groomerId).
// El pre-check de duplicado es solo un error path más amigable: no es
// atómico frente a inserts concurrentes de la misma key.
func (s *Service) Create(ctx context.Context, in Fields) ([]Location, error) {
	if strings.TrimSpace(in.GroomerID) == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.FindByGroomerID(ctx, in.GroomerID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyExists
	}

	loc := fromFields(in)
	loc.ID = uuid.NewString()

	return s.repo.Insert(ctx, loc)
}

// Update reemplaza el objeto completo keyed por el groomerId del path.
// Si el body no trae groomerId, se conserva el del path.
func (s *Service) Update(ctx context.Context, groomerID string, in Fields) ([]Location, error) {
	existing, err := s.repo.FindByGroomerID(ctx, groomerID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrNotFound
	}

	if strings.TrimSpace(in.GroomerID) == "" {
		in.GroomerID = groomerID
	}

	return s.repo.Update(ctx, groomerID, fromFields(in))
}

// Delete borra por groomerId y devuelve el count de filas afectadas.
// El pre-check de existencia está para distinguir 404 de 200; un count
// cero después de un pre-check exitoso lo reporta el handler como 500.
func (s *Service) Delete(ctx context.Context, groomerID string) (int64, error) {
	existing, err := s.repo.FindByGroomerID(ctx, groomerID)
	if err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		return 0, ErrNotFound
	}

	return s.repo.DeleteByGroomerID(ctx, groomerID)
}

func fromFields(in Fields) Location {
	return Location{
		GroomerID:    strings.TrimSpace(in.GroomerID),
		BusinessName: strings.TrimSpace(in.BusinessName),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Zip:          strings.TrimSpace(in.Zip),
		Email:        strings.TrimSpace(in.Email),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Lat:          in.Lat,
		Lng:          in.Lng,
	}
}

package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"pet-grooming-api/internal/respond"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre json del campo, no el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func RegisterRoutes(r chi.Router, svc *Service, logger *zap.Logger) {
	// Pets viven anidados bajo el profile dueño; todo el subárbol pasa
	// por el guard de ownership.
	r.Route("/profiles/{id}/pets", func(pr chi.Router) {
		pr.Use(ownerGuard)

		pr.Get("/", listPetsHandler(svc, logger))
		pr.Post("/", createPetHandler(svc, logger))
		pr.Get("/{petId}", getPetHandler(svc, logger))
		pr.Put("/{petId}", updatePetHandler(svc, logger))
		pr.Delete("/{petId}", deletePetHandler(svc, logger))
	})
}

// petRequest es el body schema explícito de POST/PUT. No tiene campos id
// ni ownerId: el id lo asigna el store y el owner sale del path, así un
// cliente no puede inyectar una primary key ni reasignar el dueño.
type petRequest struct {
	Name  string `json:"name" validate:"required"`
	Shots bool   `json:"shots"`
	Type  string `json:"type"`
	Img   string `json:"img" validate:"omitempty,url"`
}

func (req petRequest) fields() Fields {
	return Fields{
		Name:  req.Name,
		Shots: req.Shots,
		Type:  req.Type,
		Img:   req.Img,
	}
}

// listPetsHandler godoc
// @Summary List the pets owned by a profile
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /profiles/{id}/pets [get]
func listPetsHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")

		petsFound, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			logger.Error("list pets failed", zap.Error(err), zap.String("owner_id", ownerID))
			respond.ServerError(w, "Unexpected server error")
			return
		}

		if len(petsFound) == 0 {
			respond.NotFound(w, fmt.Sprintf("No pets were found for profile %s", ownerID))
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully fetched the pets for profile %s", ownerID), petsFound)
	}
}

// getPetHandler godoc
// @Summary Get a single pet by id
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile id"
// @Param petId path int true "Pet id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /profiles/{id}/pets/{petId} [get]
func getPetHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")
		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		petsFound, err := svc.GetByID(r.Context(), ownerID, petID)
		if err != nil {
			logger.Error("get pet failed", zap.Error(err), zap.Int64("pet_id", petID))
			respond.ServerError(w, "Unexpected server error")
			return
		}

		if len(petsFound) == 0 {
			respond.NotFound(w, fmt.Sprintf("Unable to find a pet with id %d for owner %s", petID, ownerID))
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully fetched a pet with id %d for owner %s", petID, ownerID), petsFound)
	}
}

// createPetHandler godoc
// @Summary Add a pet for a profile
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile id"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /profiles/{id}/pets [post]
func createPetHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")

		req, ok := decodePet(w, r, "add")
		if !ok {
			return
		}

		newPets, err := svc.Create(r.Context(), ownerID, req.fields())
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.BadRequest(w, "Invalid Request Body", "name is required")
			default:
				logger.Error("create pet failed", zap.Error(err), zap.String("owner_id", ownerID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully added a pet for owner %s", ownerID), newPets)
	}
}

// updatePetHandler godoc
// @Summary Update a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile id"
// @Param petId path int true "Pet id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /profiles/{id}/pets/{petId} [put]
func updatePetHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")
		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		req, ok := decodePet(w, r, "update")
		if !ok {
			return
		}

		updated, err := svc.Update(r.Context(), ownerID, petID, req.fields())
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.NotFound(w, fmt.Sprintf("Unable to find a pet with id %d for owner %s", petID, ownerID))
			case errors.Is(err, ErrInvalidInput):
				respond.BadRequest(w, "Invalid Request Body", "name is required")
			default:
				logger.Error("update pet failed", zap.Error(err), zap.Int64("pet_id", petID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully updated pet with id %d for owner %s", petID, ownerID), updated)
	}
}

// deletePetHandler godoc
// @Summary Delete a pet
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile id"
// @Param petId path int true "Pet id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /profiles/{id}/pets/{petId} [delete]
func deletePetHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")
		petID, ok := parsePetID(w, r)
		if !ok {
			return
		}

		count, err := svc.Delete(r.Context(), ownerID, petID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.NotFound(w, fmt.Sprintf("Unable to find a pet with id %d for owner %s", petID, ownerID))
			default:
				logger.Error("delete pet failed", zap.Error(err), zap.Int64("pet_id", petID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		// Existencia ya confirmada: count cero acá es un 500, no un 404.
		if count == 0 {
			respond.ServerError(w, fmt.Sprintf("Unexpected error deleting pet with id %d for owner %s", petID, ownerID))
			return
		}

		// A diferencia de locations, pets no expone el delete count: data
		// queda en {} (asimetría documentada del contrato).
		respond.OK(w, fmt.Sprintf("Successfully deleted the pet with id %d for owner %s", petID, ownerID), nil)
	}
}

// parsePetID convierte {petId} a entero. Un valor no parseable se rechaza
// con 400: nunca se deja pasar como número inválido-pero-truthy.
func parsePetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "petId")
	petID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || petID <= 0 {
		respond.BadRequest(w, "Invalid Pet Id",
			fmt.Sprintf("The pet id %q must be a positive integer", raw))
		return 0, false
	}
	return petID, true
}

// decodePet parsea y valida el body; escribe el envelope de error y devuelve
// ok=false si no sirve. Está duplicado a propósito respecto de locations
// (mismo criterio que los helpers por módulo: recién conviene extraerlo
// cuando se repita en más de dos módulos).
func decodePet(w http.ResponseWriter, r *http.Request, verb string) (petRequest, bool) {
	var req petRequest
	if r.Body == nil {
		respond.BadRequest(w, "No Request Body",
			fmt.Sprintf("You must submit a request body in order to %s a pet", verb))
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "No Request Body",
			fmt.Sprintf("You must submit a request body in order to %s a pet", verb))
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respond.BadRequest(w, "Invalid Request Body", "The request body is invalid")
			return req, false
		}

		detail := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				detail = append(detail, fmt.Sprintf("%s is required", fe.Field()))
			case "url":
				detail = append(detail, fmt.Sprintf("%s must be a valid URL", fe.Field()))
			default:
				detail = append(detail, fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
		respond.BadRequest(w, "Invalid Request Body", detail...)
		return req, false
	}

	return req, true
}

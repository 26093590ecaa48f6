package locations

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
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
	r.Route("/locations", func(lr chi.Router) {
		lr.Get("/", listLocationsHandler(svc, logger))
		lr.Post("/", createLocationHandler(svc, logger))
		lr.Get("/{groomerId}", getLocationHandler(svc, logger))
		lr.Put("/{groomerId}", updateLocationHandler(svc, logger))
		lr.Delete("/{groomerId}", deleteLocationHandler(svc, logger))
	})
}

// locationRequest es el body schema explícito de POST/PUT. No tiene campo
// id, así que un id mandado por el cliente nunca llega al insert/update.
type locationRequest struct {
	GroomerID    string  `json:"groomerId"`
	BusinessName string  `json:"businessName"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Zip          string  `json:"zip"`
	Email        string  `json:"email" validate:"omitempty,email"`
	PhoneNumber  string  `json:"phoneNumber"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

func (req locationRequest) fields() Fields {
	return Fields{
		GroomerID:    req.GroomerID,
		BusinessName: req.BusinessName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}
}

// listLocationsHandler godoc
// @Summary List all grooming locations
// @Tags locations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /locations [get]
func listLocationsHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	// Sin filtrado por auth id: el listado es público para cualquier
	// caller autenticado.
	return func(w http.ResponseWriter, r *http.Request) {
		locs, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Error("list locations failed", zap.Error(err))
			respond.ServerError(w, "Unexpected server error")
			return
		}

		respond.OK(w, "Successfully fetched the locations", locs)
	}
}

// getLocationHandler godoc
// @Summary Get the location(s) for a groomer
// @Tags locations
// @Security BearerAuth
// @Produce json
// @Param groomerId path string true "Groomer profile id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /locations/{groomerId} [get]
func getLocationHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groomerID := chi.URLParam(r, "groomerId")

		locs, err := svc.ListByGroomer(r.Context(), groomerID)
		if err != nil {
			logger.Error("get location failed", zap.Error(err), zap.String("groomer_id", groomerID))
			respond.ServerError(w, "Unexpected server error")
			return
		}

		// El slice vacío es la única señal de not-found. Este 404 responde
		// data: [] (quirk del contrato original; el resto usa {}).
		if len(locs) == 0 {
			respond.NotFoundData(w, "Location Not Found", []Location{})
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully fetched the location for groomer %s", groomerID), locs)
	}
}

// createLocationHandler godoc
// @Summary Register a grooming location
// @Tags locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /locations [post]
func createLocationHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLocation(w, r, "add")
		if !ok {
			return
		}
		if strings.TrimSpace(req.GroomerID) == "" {
			respond.BadRequest(w, "Invalid Request Body", "groomerId is required")
			return
		}

		locs, err := svc.Create(r.Context(), req.fields())
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyExists):
				respond.BadRequest(w, "Location already exists",
					fmt.Sprintf("A location already exists for groomer %s", req.GroomerID))
			case errors.Is(err, ErrInvalidInput):
				respond.BadRequest(w, "Invalid Request Body", "groomerId is required")
			default:
				logger.Error("create location failed", zap.Error(err), zap.String("groomer_id", req.GroomerID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully added a location for groomer %s", req.GroomerID), locs)
	}
}

// updateLocationHandler godoc
// @Summary Replace the location for a groomer
// @Tags locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groomerId path string true "Groomer profile id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /locations/{groomerId} [put]
func updateLocationHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groomerID := chi.URLParam(r, "groomerId")

		req, ok := decodeLocation(w, r, "update")
		if !ok {
			return
		}

		locs, err := svc.Update(r.Context(), groomerID, req.fields())
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.NotFound(w, "Location Not Found")
			default:
				logger.Error("update location failed", zap.Error(err), zap.String("groomer_id", groomerID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		respond.OK(w, fmt.Sprintf("Successfully updated the location for groomer %s", groomerID), locs)
	}
}

// deleteLocationHandler godoc
// @Summary Delete the location for a groomer
// @Tags locations
// @Security BearerAuth
// @Produce json
// @Param groomerId path string true "Groomer profile id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /locations/{groomerId} [delete]
func deleteLocationHandler(svc *Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groomerID := chi.URLParam(r, "groomerId")

		count, err := svc.Delete(r.Context(), groomerID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.NotFound(w, "Location Not Found")
			default:
				logger.Error("delete location failed", zap.Error(err), zap.String("groomer_id", groomerID))
				respond.ServerError(w, "Unexpected server error")
			}
			return
		}

		// La existencia ya se confirmó: count cero acá es un 500, no un 404.
		if count == 0 {
			respond.ServerError(w, fmt.Sprintf("Unexpected error deleting the location for groomer %s", groomerID))
			return
		}

		// locations responde el count crudo en data (pets responde {}).
		// Asimetría documentada del contrato, no unificar.
		respond.OK(w, fmt.Sprintf("Successfully deleted the location for groomer %s", groomerID), count)
	}
}

// decodeLocation parsea y valida el body. Escribe el envelope de error y
// devuelve ok=false si el request no sirve.
func decodeLocation(w http.ResponseWriter, r *http.Request, verb string) (locationRequest, bool) {
	var req locationRequest
	if r.Body == nil {
		respond.BadRequest(w, "No Request Body",
			fmt.Sprintf("You must submit a request body in order to %s a location", verb))
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "No Request Body",
			fmt.Sprintf("You must submit a request body in order to %s a location", verb))
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		respond.BadRequest(w, "Invalid Request Body", validationDetail(err)...)
		return req, false
	}

	return req, true
}

func validationDetail(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"The request body is invalid"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return out
}

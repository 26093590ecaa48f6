package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope es el contrato de respuesta de TODOS los endpoints:
// {message, validation, data}. validation solo lleva detalle en errores
// de autorización/validación; data lleva filas en lecturas/escrituras,
// {} en not-found/errores, y el count crudo en el delete de locations.
type Envelope struct {
	Message    string   `json:"message"`
	Validation []string `json:"validation"`
	Data       any      `json:"data"`
}

// JSON escribe el envelope con el status dado, normalizando nils para que
// el wire format sea siempre estable ("validation":[] y "data":{}).
func JSON(w http.ResponseWriter, status int, e Envelope) {
	if e.Validation == nil {
		e.Validation = []string{}
	}
	if e.Data == nil {
		e.Data = map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

// OK responde 200 con data (filas o count, según el recurso).
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Message: message, Data: data})
}

// NotFound responde 404. data queda en {} salvo que el recurso pida otra
// cosa (locations usa [] en el get por groomer; ver NotFoundData).
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, Envelope{Message: message})
}

// NotFoundData responde 404 con un data explícito.
func NotFoundData(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusNotFound, Envelope{Message: message, Data: data})
}

// BadRequest responde 400 con los strings de validación que expliquen
// qué vino mal en el request.
func BadRequest(w http.ResponseWriter, message string, validation ...string) {
	JSON(w, http.StatusBadRequest, Envelope{Message: message, Validation: validation})
}

// AccessDenied responde 401 con ambos ids para poder diagnosticar el
// mismatch. Es un boundary interno de confianza: filtrar los ids acá
// es aceptable y está asumido por el contrato.
func AccessDenied(w http.ResponseWriter, validation ...string) {
	JSON(w, http.StatusUnauthorized, Envelope{Message: "Access Denied", Validation: validation})
}

// ServerError responde 500 genérico. El error crudo del backend nunca
// llega al caller; el handler lo loguea antes de llamar acá.
func ServerError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, Envelope{Message: message})
}

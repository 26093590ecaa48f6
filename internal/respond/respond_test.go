package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// El contrato pide las tres keys siempre presentes
	require.Contains(t, body, "message")
	require.Contains(t, body, "validation")
	require.Contains(t, body, "data")

	return body
}

func TestJSON_NormalizesNilValidationAndData(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, Envelope{Message: "hello"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	// Nunca "validation":null ni "data":null en el wire
	assert.JSONEq(t, `{"message":"hello","validation":[],"data":{}}`, rec.Body.String())
}

func TestOK_CarriesDataAsIs(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, "fetched", []string{"row"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "fetched", body["message"])
	assert.Equal(t, []any{"row"}, body["data"])
}

func TestOK_RawCountSurvivesAsNumber(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, "deleted", int64(3))

	body := decode(t, rec)
	assert.Equal(t, float64(3), body["data"])
}

func TestNotFound_DefaultsDataToEmptyObject(t *testing.T) {
	rec := httptest.NewRecorder()

	NotFound(rec, "Location Not Found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{}, body["data"])
}

func TestNotFoundData_OverridesData(t *testing.T) {
	rec := httptest.NewRecorder()

	NotFoundData(rec, "Location Not Found", []Envelope{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
}

func TestBadRequest_CarriesValidationDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	BadRequest(rec, "Invalid Request Body", "The name field is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{"The name field is required"}, body["validation"])
}

func TestAccessDenied_FixedMessageAnd401(t *testing.T) {
	rec := httptest.NewRecorder()

	AccessDenied(rec, "Your auth id a and the route profile id b don't match")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Access Denied", body["message"])
	require.Len(t, body["validation"], 1)
}

func TestServerError_Returns500(t *testing.T) {
	rec := httptest.NewRecorder()

	ServerError(rec, "Unexpected server error")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Unexpected server error", body["message"])
	assert.Equal(t, []any{}, body["validation"])
}

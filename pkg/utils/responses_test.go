package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "ok", map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.Equal(t, "ok", body.Message)
	assert.Nil(t, body.Errors)
}

func TestResponseErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "invalid", map[string]string{"nome": "required"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)

	rec = httptest.NewRecorder()
	ResponseTooManyRequests(rec, "slow down")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestResponseFile(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseFile(rec, "application/pdf", "biglietto.pdf", []byte("%PDF"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, `inline; filename="biglietto.pdf"`, rec.Header().Get("Content-Disposition"))

	rec = httptest.NewRecorder()
	ResponseFile(rec, "image/png", "", []byte{1})
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

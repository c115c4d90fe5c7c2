package delete_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err    error
	lastID int64
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

func doRequest(t *testing.T, service *stubService, id string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/reservas/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	service := &stubService{}

	rec := doRequest(t, service, "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), service.lastID)

	var resp DeleteReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Reserva excluída com sucesso", resp.Mensagem)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &stubService{}, "abc")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ID de reserva inválido")
}

func TestHandle_NotFound(t *testing.T) {
	rec := doRequest(t, &stubService{err: reservations.ErrReservationNotFound}, "99")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reserva não encontrada")
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubService{err: errors.New("db down")}, "7")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro interno do servidor")
}

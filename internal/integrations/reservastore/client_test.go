package reservastore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL+"/api", 5*time.Second, nopLogger{}), srv
}

func testInput() *domain.ReservationInput {
	return &domain.ReservationInput{
		Local:             "Filial Centro",
		Sala:              "Sala A",
		DataInicio:        time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC),
		DataFim:           time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Responsavel:       "Ana",
		Cafe:              true,
		QuantidadePessoas: ptr.Ptr(10),
	}
}

func TestList(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reservas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "local": "Filial Centro", "sala": "Sala A",
			 "data_inicio": "2026-09-10T13:00:00Z", "data_fim": "2026-09-10T14:00:00Z",
			 "responsavel": "Ana", "cafe": true, "quantidade_pessoas": 10,
			 "descricao": "", "created_at": "2026-09-01T08:00:00Z", "updated_at": "2026-09-01T08:00:00Z"},
			{"id": 2, "local": "Filial Sul", "sala": "Sala B",
			 "data_inicio": "2026-09-11T09:00:00", "data_fim": "2026-09-11T10:00:00",
			 "responsavel": "Bruno", "cafe": false, "quantidade_pessoas": null, "descricao": "1:1"}
		]`))
	})
	defer srv.Close()

	reservations, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, reservations, 2)

	first := reservations[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC), first.DataInicio)
	require.NotNil(t, first.QuantidadePessoas)
	assert.Equal(t, 10, *first.QuantidadePessoas)

	// Zone-less timestamps are read as UTC.
	second := reservations[1]
	assert.Equal(t, time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC), second.DataInicio)
	assert.Nil(t, second.QuantidadePessoas)
}

func TestCreate(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservas", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload ReservationPayload
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload)) {
			assert.Equal(t, "Filial Centro", payload.Local)
			assert.Equal(t, "2026-09-10T13:00:00Z", payload.DataInicio)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"mensagem": "Reserva criada com sucesso", "reserva":
			{"id": 42, "local": "Filial Centro", "sala": "Sala A",
			 "data_inicio": "2026-09-10T13:00:00Z", "data_fim": "2026-09-10T14:00:00Z",
			 "responsavel": "Ana", "cafe": true, "quantidade_pessoas": 10, "descricao": ""}}`))
	})
	defer srv.Close()

	reservation, err := client.Create(context.Background(), testInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), reservation.ID)
	assert.Equal(t, "Sala A", reservation.Sala)
}

func TestCreate_StoreErrorEnvelope(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"erro": "A data/hora de início deve ser anterior à data/hora de fim"}`))
	})
	defer srv.Close()

	_, err := client.Create(context.Background(), testInput())

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "A data/hora de início deve ser anterior à data/hora de fim", apiErr.Message)
}

func TestCreate_MalformedErrorBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	})
	defer srv.Close()

	_, err := client.Create(context.Background(), testInput())

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUpdate(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/reservas/42", r.URL.Path)
		w.Write([]byte(`{"mensagem": "Reserva atualizada com sucesso", "reserva":
			{"id": 42, "local": "Filial Centro", "sala": "Sala B",
			 "data_inicio": "2026-09-10T13:00:00Z", "data_fim": "2026-09-10T14:00:00Z",
			 "responsavel": "Ana", "cafe": false, "quantidade_pessoas": null, "descricao": ""}}`))
	})
	defer srv.Close()

	reservation, err := client.Update(context.Background(), 42, testInput())

	require.NoError(t, err)
	assert.Equal(t, "Sala B", reservation.Sala)
}

func TestUpdate_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"erro": "Reserva não encontrada"}`))
	})
	defer srv.Close()

	_, err := client.Update(context.Background(), 99, testInput())

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/reservas/7", r.URL.Path)
		w.Write([]byte(`{"mensagem": "Reserva excluída com sucesso"}`))
	})
	defer srv.Close()

	require.NoError(t, client.Delete(context.Background(), 7))
}

func TestDelete_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	require.ErrorIs(t, client.Delete(context.Background(), 7), ErrReservationNotFound)
}

func TestLocaisAndSalas(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/locais":
			w.Write([]byte(`["Filial Centro", "Filial Sul"]`))
		case "/api/salas":
			assert.Equal(t, "Filial Sul", r.URL.Query().Get("local"))
			w.Write([]byte(`["Sala B"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	locais, err := client.Locais(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Filial Centro", "Filial Sul"}, locais)

	salas, err := client.Salas(context.Background(), "Filial Sul")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sala B"}, salas)
}

func TestList_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewClient(srv.URL+"/api", time.Second, nopLogger{})
	srv.Close()

	_, err := client.List(context.Background())

	require.ErrorIs(t, err, ErrInternal)
}

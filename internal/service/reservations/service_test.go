package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bananaltda/BRS-ReservationService/internal/infra/storage/reservation"
	"github.com/bananaltda/BRS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	reservations []*domain.Reservation
	byID         *domain.Reservation
	created      *domain.Reservation
	updated      *domain.Reservation
	locais       []string
	salas        []string
	err          error

	lastInput *domain.ReservationInput
}

func (r *stubRepo) Create(_ context.Context, input *domain.ReservationInput) (*domain.Reservation, error) {
	r.lastInput = input
	return r.created, r.err
}

func (r *stubRepo) GetByID(context.Context, int64) (*domain.Reservation, error) {
	return r.byID, r.err
}

func (r *stubRepo) List(context.Context) ([]*domain.Reservation, error) {
	return r.reservations, r.err
}

func (r *stubRepo) Update(_ context.Context, _ int64, input *domain.ReservationInput) (*domain.Reservation, error) {
	r.lastInput = input
	return r.updated, r.err
}

func (r *stubRepo) Delete(context.Context, int64) error {
	return r.err
}

func (r *stubRepo) DistinctLocais(context.Context) ([]string, error) {
	return r.locais, r.err
}

func (r *stubRepo) DistinctSalas(context.Context, *string) ([]string, error) {
	return r.salas, r.err
}

func validInput() *domain.ReservationInput {
	return &domain.ReservationInput{
		Local:       "Filial Centro",
		Sala:        "Sala A",
		DataInicio:  time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC),
		DataFim:     time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Responsavel: "Ana",
	}
}

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		Local:       "Filial Centro",
		Sala:        "Sala A",
		DataInicio:  time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC),
		DataFim:     time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Responsavel: "Ana",
	}
}

func TestCreate_Valid(t *testing.T) {
	repo := &stubRepo{created: storedReservation()}
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	input := validInput()
	input.DataFim = input.DataInicio

	_, err := svc.Create(context.Background(), input)

	require.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Nil(t, repo.lastInput)
}

func TestCreate_CafeWithoutHeadcount(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	input := validInput()
	input.Cafe = true

	_, err := svc.Create(context.Background(), input)

	require.ErrorIs(t, err, ErrQuantidadeRequired)
}

func TestCreate_NoCafeClearsHeadcount(t *testing.T) {
	repo := &stubRepo{created: storedReservation()}
	svc := NewService(repo, nopLogger{})

	input := validInput()
	input.QuantidadePessoas = ptr.Ptr(10)

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, repo.lastInput.QuantidadePessoas)
}

func TestUpdate_MergesPartialRequest(t *testing.T) {
	current := storedReservation()
	repo := &stubRepo{byID: current, updated: current}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &UpdateRequest{
		Sala: ptr.Ptr("Sala B"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastInput)
	assert.Equal(t, "Sala B", repo.lastInput.Sala)
	assert.Equal(t, "Filial Centro", repo.lastInput.Local)
	assert.Equal(t, current.DataInicio, repo.lastInput.DataInicio)
}

func TestUpdate_CafeOffDiscardsStoredHeadcount(t *testing.T) {
	current := storedReservation()
	current.Cafe = true
	current.QuantidadePessoas = ptr.Ptr(10)
	repo := &stubRepo{byID: current, updated: current}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &UpdateRequest{
		Cafe: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, repo.lastInput.Cafe)
	assert.Nil(t, repo.lastInput.QuantidadePessoas)
}

func TestUpdate_CafeOnRequiresHeadcount(t *testing.T) {
	repo := &stubRepo{byID: storedReservation()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &UpdateRequest{
		Cafe: ptr.Ptr(true),
	})

	require.ErrorIs(t, err, ErrQuantidadeRequired)
}

func TestUpdate_RejectsInvertedRange(t *testing.T) {
	repo := &stubRepo{byID: storedReservation()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &UpdateRequest{
		DataFim: ptr.Ptr(time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)),
	})

	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &stubRepo{err: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &UpdateRequest{})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &stubRepo{err: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	require.ErrorIs(t, svc.Delete(context.Background(), 99), ErrReservationNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection lost")}
	svc := NewService(repo, nopLogger{})

	require.ErrorIs(t, svc.Delete(context.Background(), 1), ErrInternal)
}

func TestList(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{storedReservation()}}
	svc := NewService(repo, nopLogger{})

	reservations, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestLocaisAndSalas(t *testing.T) {
	repo := &stubRepo{locais: []string{"Filial Centro"}, salas: []string{"Sala A"}}
	svc := NewService(repo, nopLogger{})

	locais, err := svc.Locais(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Filial Centro"}, locais)

	salas, err := svc.Salas(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sala A"}, salas)
}

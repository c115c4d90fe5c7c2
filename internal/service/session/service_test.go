package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/internal/integrations/reservastore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubSubmitter struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{} // when set, Execute waits until it is closed
	release chan struct{} // closed once Execute has started

	reservation *domain.Reservation
	fieldErrs   domain.FieldErrors
	err         error
}

func (s *stubSubmitter) Execute(_ context.Context, _ *domain.FormDraft, _ *int64) (*domain.Reservation, domain.FieldErrors, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	release := s.release
	s.mu.Unlock()

	if release != nil {
		close(release)
	}
	if block != nil {
		<-block
	}
	return s.reservation, s.fieldErrs, s.err
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubStore struct {
	deleteCalls int
	deletedID   int64
	err         error
}

func (s *stubStore) Delete(_ context.Context, id int64) error {
	s.deleteCalls++
	s.deletedID = id
	return s.err
}

type stubList struct {
	refreshCalls int
	err          error
}

func (l *stubList) Refresh(context.Context) error {
	l.refreshCalls++
	return l.err
}

func newTestSession(submitter *stubSubmitter, store *stubStore, list *stubList) *Service {
	return NewService(submitter, store, list, time.UTC, nopLogger{})
}

func TestStartCreate(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})

	require.NoError(t, sess.StartCreate())

	assert.Equal(t, ModeEditing, sess.Mode())
	require.NotNil(t, sess.Draft())
	assert.Nil(t, sess.TargetID())
}

func TestStartEdit_PopulatesDraft(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	r := &domain.Reservation{
		ID:          5,
		Local:       "Filial Centro",
		Sala:        "Sala A",
		DataInicio:  time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC),
		DataFim:     time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Responsavel: "Ana",
	}

	require.NoError(t, sess.StartEdit(r))

	assert.Equal(t, ModeEditing, sess.Mode())
	require.NotNil(t, sess.TargetID())
	assert.Equal(t, int64(5), *sess.TargetID())

	draft := sess.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, "Filial Centro", draft.Local)
	assert.Equal(t, "2026-09-10T13:00", draft.DataInicio)
}

func TestStart_RejectsWhenInteractionActive(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())

	assert.ErrorIs(t, sess.StartCreate(), ErrInteractionActive)
	assert.ErrorIs(t, sess.StartEdit(&domain.Reservation{ID: 1}), ErrInteractionActive)
	assert.ErrorIs(t, sess.StartDelete(&domain.Reservation{ID: 1}), ErrInteractionActive)
}

func TestSetField(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())

	require.NoError(t, sess.SetField(domain.FieldLocal, "Filial Sul"))
	require.NoError(t, sess.SetField("descricao", "Reunião"))

	draft := sess.Draft()
	assert.Equal(t, "Filial Sul", draft.Local)
	assert.Equal(t, "Reunião", draft.Descricao)

	assert.ErrorIs(t, sess.SetField("inexistente", "x"), ErrUnknownField)
}

func TestSetField_RequiresOpenForm(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})

	assert.ErrorIs(t, sess.SetField(domain.FieldLocal, "x"), ErrNoInteraction)
	assert.ErrorIs(t, sess.SetCafe(true), ErrNoInteraction)
}

func TestSetField_ClearsThatFieldError(t *testing.T) {
	submitter := &stubSubmitter{fieldErrs: domain.FieldErrors{
		domain.FieldLocal: "Local é obrigatório",
		domain.FieldSala:  "Sala é obrigatória",
	}}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())
	require.ErrorIs(t, sess.Submit(context.Background()), ErrValidationFailed)

	require.NoError(t, sess.SetField(domain.FieldLocal, "Filial Centro"))

	errs := sess.FieldErrors()
	assert.False(t, errs.Has(domain.FieldLocal))
	assert.True(t, errs.Has(domain.FieldSala))
}

func TestSetCafe_UncheckDiscardsHeadcountAndError(t *testing.T) {
	submitter := &stubSubmitter{fieldErrs: domain.FieldErrors{
		domain.FieldQuantidadePessoas: "Quantidade de pessoas é obrigatória quando café é solicitado",
	}}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())
	require.NoError(t, sess.SetCafe(true))
	require.NoError(t, sess.SetField(domain.FieldQuantidadePessoas, "10"))
	require.ErrorIs(t, sess.Submit(context.Background()), ErrValidationFailed)

	require.NoError(t, sess.SetCafe(false))

	draft := sess.Draft()
	assert.False(t, draft.Cafe)
	assert.Empty(t, draft.QuantidadePessoas)
	assert.False(t, sess.FieldErrors().Has(domain.FieldQuantidadePessoas))
}

func TestCancel_ClosesAndDiscards(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())
	require.NoError(t, sess.SetField(domain.FieldLocal, "Filial Centro"))

	require.NoError(t, sess.Cancel())

	assert.Equal(t, ModeIdle, sess.Mode())
	assert.Nil(t, sess.Draft())
	assert.Nil(t, sess.TargetID())
}

func TestCancel_NoInteraction(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	assert.ErrorIs(t, sess.Cancel(), ErrNoInteraction)
}

func TestSubmit_Success(t *testing.T) {
	submitter := &stubSubmitter{reservation: &domain.Reservation{ID: 3}}
	list := &stubList{}
	sess := newTestSession(submitter, &stubStore{}, list)
	require.NoError(t, sess.StartCreate())

	require.NoError(t, sess.Submit(context.Background()))

	assert.Equal(t, ModeIdle, sess.Mode())
	assert.Nil(t, sess.Draft())
	assert.Empty(t, sess.Banner())
	assert.Equal(t, 1, list.refreshCalls)
	assert.False(t, sess.Submitting())
}

func TestSubmit_ValidationFailureKeepsFormOpen(t *testing.T) {
	submitter := &stubSubmitter{fieldErrs: domain.FieldErrors{domain.FieldLocal: "Local é obrigatório"}}
	list := &stubList{}
	sess := newTestSession(submitter, &stubStore{}, list)
	require.NoError(t, sess.StartCreate())

	require.ErrorIs(t, sess.Submit(context.Background()), ErrValidationFailed)

	assert.Equal(t, ModeEditing, sess.Mode())
	assert.True(t, sess.FieldErrors().Has(domain.FieldLocal))
	assert.Equal(t, 0, list.refreshCalls)
	assert.False(t, sess.Submitting())
}

func TestSubmit_StoreFailureKeepsDraftAndSetsBanner(t *testing.T) {
	storeErr := errors.New("connection refused")
	submitter := &stubSubmitter{err: storeErr}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())
	require.NoError(t, sess.SetField(domain.FieldLocal, "Filial Centro"))

	require.ErrorIs(t, sess.Submit(context.Background()), storeErr)

	assert.Equal(t, ModeEditing, sess.Mode())
	require.NotNil(t, sess.Draft())
	assert.Equal(t, "Filial Centro", sess.Draft().Local)
	assert.Equal(t, msgErroSalvar, sess.Banner())
	assert.False(t, sess.Submitting())
}

func TestSubmit_BannerUsesStoreMessage(t *testing.T) {
	apiErr := &reservastore.APIError{StatusCode: 400, Message: "A data/hora de início deve ser anterior à data/hora de fim"}
	submitter := &stubSubmitter{err: apiErr}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())

	require.Error(t, sess.Submit(context.Background()))

	assert.Equal(t, apiErr.Message, sess.Banner())
}

func TestSubmit_RefreshFailureStillClosesForm(t *testing.T) {
	submitter := &stubSubmitter{reservation: &domain.Reservation{ID: 3}}
	list := &stubList{err: errors.New("timeout")}
	sess := newTestSession(submitter, &stubStore{}, list)
	require.NoError(t, sess.StartCreate())

	require.NoError(t, sess.Submit(context.Background()))

	assert.Equal(t, ModeIdle, sess.Mode())
	assert.Equal(t, msgErroSalvar, sess.Banner())
}

func TestSubmit_NoOpenForm(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	assert.ErrorIs(t, sess.Submit(context.Background()), ErrNoInteraction)
}

func TestSubmit_SingleFlight(t *testing.T) {
	block := make(chan struct{})
	release := make(chan struct{})
	submitter := &stubSubmitter{
		reservation: &domain.Reservation{ID: 3},
		block:       block,
		release:     release,
	}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())

	done := make(chan error, 1)
	go func() {
		done <- sess.Submit(context.Background())
	}()
	<-release

	// A second submit while the first is in flight is rejected without
	// reaching the store, and cancelling is rejected too.
	assert.ErrorIs(t, sess.Submit(context.Background()), ErrSubmissionInFlight)
	assert.ErrorIs(t, sess.Cancel(), ErrSubmissionInFlight)
	assert.True(t, sess.Submitting())

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, submitter.callCount())
	assert.Equal(t, ModeIdle, sess.Mode())
}

func TestConfirmDelete_Success(t *testing.T) {
	store := &stubStore{}
	list := &stubList{}
	sess := newTestSession(&stubSubmitter{}, store, list)
	require.NoError(t, sess.StartDelete(&domain.Reservation{ID: 8}))

	require.NoError(t, sess.ConfirmDelete(context.Background()))

	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, int64(8), store.deletedID)
	assert.Equal(t, 1, list.refreshCalls)
	assert.Equal(t, ModeIdle, sess.Mode())
	assert.Empty(t, sess.Banner())
}

func TestConfirmDelete_FailureKeepsConfirmationOpen(t *testing.T) {
	store := &stubStore{err: errors.New("timeout")}
	sess := newTestSession(&stubSubmitter{}, store, &stubList{})
	require.NoError(t, sess.StartDelete(&domain.Reservation{ID: 8}))

	require.Error(t, sess.ConfirmDelete(context.Background()))

	assert.Equal(t, ModeConfirmingDelete, sess.Mode())
	assert.Equal(t, msgErroExcluir, sess.Banner())
	assert.False(t, sess.Submitting())
}

func TestConfirmDelete_NotFoundBanner(t *testing.T) {
	store := &stubStore{err: reservastore.ErrReservationNotFound}
	sess := newTestSession(&stubSubmitter{}, store, &stubList{})
	require.NoError(t, sess.StartDelete(&domain.Reservation{ID: 8}))

	require.ErrorIs(t, sess.ConfirmDelete(context.Background()), reservastore.ErrReservationNotFound)

	assert.Equal(t, msgReservaNaoEncontrada, sess.Banner())
}

func TestStart_ClearsPreviousBanner(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("connection refused")}
	sess := newTestSession(submitter, &stubStore{}, &stubList{})
	require.NoError(t, sess.StartCreate())
	require.Error(t, sess.Submit(context.Background()))
	require.NoError(t, sess.Cancel())
	require.NotEmpty(t, sess.Banner())

	require.NoError(t, sess.StartCreate())

	assert.Empty(t, sess.Banner())
}

func TestConfirmDelete_RequiresConfirmationMode(t *testing.T) {
	sess := newTestSession(&stubSubmitter{}, &stubStore{}, &stubList{})
	assert.ErrorIs(t, sess.ConfirmDelete(context.Background()), ErrNoInteraction)

	require.NoError(t, sess.StartCreate())
	assert.ErrorIs(t, sess.ConfirmDelete(context.Background()), ErrNoInteraction)
}

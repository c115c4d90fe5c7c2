package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/internal/integrations/reservastore"
)

// Mode identifies the active interaction, exactly one at a time.
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeEditing          Mode = "editing"
	ModeConfirmingDelete Mode = "confirming_delete"
)

// Fallback banner messages when the store gives none.
const (
	msgErroSalvar           = "Erro ao salvar reserva"
	msgErroExcluir          = "Erro ao excluir reserva"
	msgReservaNaoEncontrada = "Reserva não encontrada"
)

// Service owns the interaction state of one user session: which modal is
// open, the single form draft, the per-field errors and the banner error.
// Store mutations always run validate → submit → refresh → close, with at
// most one request in flight per session.
type Service struct {
	submitter Submitter
	store     StoreClient
	list      ListCache
	location  *time.Location
	logger    Logger

	mu          sync.Mutex
	mode        Mode
	draft       *domain.FormDraft
	targetID    *int64
	fieldErrors domain.FieldErrors
	banner      string
	submitting  bool
}

// NewService creates an idle session. loc is the timezone drafts are edited
// in (the UI's local zone).
func NewService(submitter Submitter, store StoreClient, list ListCache, loc *time.Location, logger Logger) *Service {
	return &Service{
		submitter: submitter,
		store:     store,
		list:      list,
		location:  loc,
		logger:    logger,
		mode:      ModeIdle,
	}
}

// StartCreate opens the form with an empty draft for a new reservation.
func (s *Service) StartCreate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeIdle {
		return ErrInteractionActive
	}

	s.mode = ModeEditing
	s.draft = domain.NewFormDraft()
	s.targetID = nil
	s.fieldErrors = nil
	s.banner = ""
	s.logger.Info("Session: editing new reservation")
	return nil
}

// StartEdit opens the form pre-populated from an existing record.
func (s *Service) StartEdit(r *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeIdle {
		return ErrInteractionActive
	}

	id := r.ID
	s.mode = ModeEditing
	s.draft = domain.DraftFromReservation(r, s.location)
	s.targetID = &id
	s.fieldErrors = nil
	s.banner = ""
	s.logger.Info("Session: editing reservation id=%d", id)
	return nil
}

// StartDelete opens the delete confirmation for an existing record.
func (s *Service) StartDelete(r *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeIdle {
		return ErrInteractionActive
	}

	id := r.ID
	s.mode = ModeConfirmingDelete
	s.targetID = &id
	s.banner = ""
	s.logger.Info("Session: confirming delete of reservation id=%d", id)
	return nil
}

// SetField updates one draft field by its wire key and clears that field's
// validation error, mirroring the form behavior while the user types.
func (s *Service) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeEditing {
		return ErrNoInteraction
	}

	switch field {
	case domain.FieldLocal:
		s.draft.Local = value
	case domain.FieldSala:
		s.draft.Sala = value
	case domain.FieldDataInicio:
		s.draft.DataInicio = value
	case domain.FieldDataFim:
		s.draft.DataFim = value
	case domain.FieldResponsavel:
		s.draft.Responsavel = value
	case domain.FieldQuantidadePessoas:
		s.draft.QuantidadePessoas = value
	case "descricao":
		s.draft.Descricao = value
	default:
		return ErrUnknownField
	}

	delete(s.fieldErrors, field)
	return nil
}

// SetCafe toggles the catering checkbox; unchecking discards the headcount.
func (s *Service) SetCafe(checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeEditing {
		return ErrNoInteraction
	}

	s.draft.SetCafe(checked)
	if !checked {
		delete(s.fieldErrors, domain.FieldQuantidadePessoas)
	}
	return nil
}

// Cancel closes the active interaction and discards the draft. It is
// immediate and synchronous; while a request is in flight it is rejected
// instead (the session serializes rather than aborting mid-flight).
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeIdle {
		return ErrNoInteraction
	}
	if s.submitting {
		return ErrSubmissionInFlight
	}

	s.logger.Info("Session: interaction cancelled")
	s.closeInteractionLocked()
	return nil
}

// Submit runs the full submission lifecycle for the open form:
// validate → create/update → refresh → close.
//
// Validation failures populate FieldErrors() and make no network call. Store
// failures keep the form open with the draft intact and set the banner. On
// success the list refresh is awaited before the interaction closes; a
// refresh failure after a successful mutation still closes the form (the
// mutation is committed) but leaves the refresh message in the banner.
func (s *Service) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.mode != ModeEditing {
		s.mu.Unlock()
		return ErrNoInteraction
	}
	if s.submitting {
		s.mu.Unlock()
		s.logger.Warn("Session: duplicate submit ignored")
		return ErrSubmissionInFlight
	}
	s.submitting = true
	draft := s.draft
	targetID := s.targetID
	s.mu.Unlock()

	reservation, fieldErrs, err := s.submitter.Execute(ctx, draft, targetID)

	if err == nil && fieldErrs.Empty() {
		return s.finishMutation(ctx, reservation.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if !fieldErrs.Empty() {
		s.fieldErrors = fieldErrs
		return ErrValidationFailed
	}

	s.banner = bannerMessage(err, msgErroSalvar)
	return err
}

// ConfirmDelete dispatches the pending deletion. Failures keep the
// confirmation open so the user can retry or cancel.
func (s *Service) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if s.mode != ModeConfirmingDelete {
		s.mu.Unlock()
		return ErrNoInteraction
	}
	if s.submitting {
		s.mu.Unlock()
		s.logger.Warn("Session: duplicate delete ignored")
		return ErrSubmissionInFlight
	}
	s.submitting = true
	id := *s.targetID
	s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.submitting = false
		s.banner = bannerMessage(err, msgErroExcluir)
		return err
	}

	s.logger.Info("Session: deleted reservation id=%d", id)
	return s.finishMutation(ctx, id)
}

// finishMutation runs the mandatory post-mutation refresh and closes the
// interaction. The refresh is awaited; its failure no longer affects the
// mutation outcome, only the banner.
func (s *Service) finishMutation(ctx context.Context, id int64) error {
	refreshErr := s.list.Refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.closeInteractionLocked()

	if refreshErr != nil {
		s.logger.Warn("Session: mutation id=%d committed but refresh failed: %v", id, refreshErr)
		s.banner = bannerMessage(refreshErr, msgErroSalvar)
	} else {
		s.banner = ""
	}
	return nil
}

func (s *Service) closeInteractionLocked() {
	s.mode = ModeIdle
	s.draft = nil
	s.targetID = nil
	s.fieldErrors = nil
}

// Mode returns the active interaction mode.
func (s *Service) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Draft returns a copy of the working draft, or nil when no form is open.
func (s *Service) Draft() *domain.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil
	}
	copied := *s.draft
	return &copied
}

// TargetID returns the id of the record being edited or deleted, or nil when
// creating.
func (s *Service) TargetID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.targetID == nil {
		return nil
	}
	id := *s.targetID
	return &id
}

// FieldErrors returns a copy of the per-field validation messages.
func (s *Service) FieldErrors() domain.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fieldErrors == nil {
		return nil
	}
	copied := make(domain.FieldErrors, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		copied[k] = v
	}
	return copied
}

// Banner returns the banner error for the active interaction ("" when none).
func (s *Service) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// Submitting reports whether a store request is in flight.
func (s *Service) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// bannerMessage picks the user-facing banner text for a store failure: the
// store-provided erro message when present, otherwise a generic fallback.
func bannerMessage(err error, fallback string) string {
	if apiErr, ok := reservastore.AsAPIError(err); ok {
		return apiErr.Message
	}
	if errors.Is(err, reservastore.ErrReservationNotFound) {
		return msgReservaNaoEncontrada
	}
	return fallback
}

package submit_reservation

import (
	"context"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// UseCase validates a form draft and, when valid, dispatches the normalized
// payload to the store: create when targetID is nil, update otherwise.
// It performs no state transitions; the session decides what happens to the
// interaction based on the outcome.
type UseCase struct {
	store        StoreClient
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase creates the submission use case. loc is the timezone drafts are
// edited in.
func NewUseCase(store StoreClient, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		location:     loc,
		logger:       logger,
	}
}

// Execute runs validate → submit. Exactly one of the three results is
// meaningful:
//   - fieldErrs non-empty: the draft is invalid; no network call was made.
//   - err non-nil: the store rejected the payload or was unreachable.
//   - reservation non-nil: the mutation succeeded.
func (uc *UseCase) Execute(ctx context.Context, draft *domain.FormDraft, targetID *int64) (*domain.Reservation, domain.FieldErrors, error) {
	now := uc.timeProvider.Now()

	input, fieldErrs := validateDraft(draft, now, uc.location)
	if !fieldErrs.Empty() {
		uc.logger.Warn("SubmitReservation: validation failed on %d field(s)", len(fieldErrs))
		return nil, fieldErrs, nil
	}

	var (
		reservation *domain.Reservation
		err         error
	)

	if targetID == nil {
		uc.logger.Info("SubmitReservation: creating reservation local=%q sala=%q", input.Local, input.Sala)
		reservation, err = uc.store.Create(ctx, input)
	} else {
		uc.logger.Info("SubmitReservation: updating reservation id=%d", *targetID)
		reservation, err = uc.store.Update(ctx, *targetID, input)
	}

	if err != nil {
		uc.logger.Error("SubmitReservation: store call failed: %v", err)
		return nil, nil, err
	}

	uc.logger.Info("SubmitReservation: stored reservation id=%d", reservation.ID)
	return reservation, nil, nil
}

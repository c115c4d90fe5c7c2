package session

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// Submitter validates a draft and dispatches the create/update to the store.
type Submitter interface {
	Execute(ctx context.Context, draft *domain.FormDraft, targetID *int64) (*domain.Reservation, domain.FieldErrors, error)
}

// StoreClient is the slice of the store client the session needs directly.
type StoreClient interface {
	Delete(ctx context.Context, id int64) error
}

// ListCache refreshes the process-wide reservation list after a successful
// mutation.
type ListCache interface {
	Refresh(ctx context.Context) error
}

// Logger is the logging dependency of the session.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

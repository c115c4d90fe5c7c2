package submit_reservation

import (
	"context"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// StoreClient is the slice of the reservation store client this use case
// needs.
type StoreClient interface {
	Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, input *domain.ReservationInput) (*domain.Reservation, error)
}

// TimeProvider supplies the current instant (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging dependency of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

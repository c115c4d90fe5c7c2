package reservations

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// ReservationRepository is the persistence dependency of the service.
type ReservationRepository interface {
	Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Update(ctx context.Context, id int64, input *domain.ReservationInput) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	DistinctLocais(ctx context.Context) ([]string, error)
	DistinctSalas(ctx context.Context, local *string) ([]string, error)
}

// Logger is the logging dependency of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_reservation

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

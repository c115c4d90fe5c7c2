package list_reservations

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

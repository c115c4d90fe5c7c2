package update_reservation

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
)

type ReservationService interface {
	Update(ctx context.Context, id int64, req *reservations.UpdateRequest) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_salas

import "context"

type ReservationService interface {
	Salas(ctx context.Context, local *string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

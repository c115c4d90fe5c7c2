package list_locais

import "context"

type ReservationService interface {
	Locais(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

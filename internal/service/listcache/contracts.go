package listcache

import (
	"context"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// StoreClient is the slice of the store client the cache needs.
type StoreClient interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
}

// Logger is the logging dependency of the cache.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

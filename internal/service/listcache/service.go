package listcache

import (
	"context"
	"sync"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// State is the display state of the reservation list.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

const msgErroCarregar = "Erro ao carregar reservas"

// Service is the process-wide cache of the reservation set. It is the only
// writer of the cached list, and every successful refresh replaces the
// snapshot wholesale; records are never merged or patched individually.
type Service struct {
	store  StoreClient
	logger Logger

	mu           sync.RWMutex
	state        State
	reservations []*domain.Reservation
	errMessage   string
}

// Snapshot is a point-in-time view of the cache for rendering. On StateError
// the Reservations field still holds the last Ready content, which is empty
// only when the very first load failed.
type Snapshot struct {
	State        State
	Reservations []*domain.Reservation
	ErrorMessage string
}

// NewService creates the cache in its initial Loading state with no
// snapshot.
func NewService(store StoreClient, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		state:  StateLoading,
	}
}

// Refresh fetches the current reservation set and replaces the cached list.
// On failure the previous snapshot is kept and the state moves to Error with
// a user-facing message.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	reservations, err := s.store.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("ListCache: refresh failed: %v", err)
		s.state = StateError
		s.errMessage = msgErroCarregar
		return err
	}

	s.logger.Info("ListCache: refreshed, %d reservation(s)", len(reservations))
	s.state = StateReady
	s.reservations = reservations
	s.errMessage = ""
	return nil
}

// Snapshot returns the current display state and a copy of the cached list.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Reservation, len(s.reservations))
	copy(list, s.reservations)

	return Snapshot{
		State:        s.state,
		Reservations: list,
		ErrorMessage: s.errMessage,
	}
}

// Find returns the cached reservation with the given id, or nil.
func (s *Service) Find(id int64) *domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

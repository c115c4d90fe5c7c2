package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bananaltda/BRS-ReservationService/internal/infra/storage/reservation"
)

// Service implements the store-side reservation operations.
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService creates the reservations service.
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every reservation ordered by start time.
func (s *Service) List(ctx context.Context) ([]*domain.Reservation, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservation(s)", len(reservations))
	return reservations, nil
}

// Create validates and stores a new reservation.
func (s *Service) Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error) {
	if err := validateInput(input); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: stored reservation id=%d local=%q sala=%q", created.ID, created.Local, created.Sala)
	return created, nil
}

// Update applies a partial update to an existing reservation and returns the
// stored result.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*domain.Reservation, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Update: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	input := applyUpdate(current, req)
	if err := validateInput(input); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: stored reservation id=%d", id)
	return updated, nil
}

// Delete removes a reservation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed reservation id=%d", id)
	return nil
}

// Locais returns the distinct site names.
func (s *Service) Locais(ctx context.Context) ([]string, error) {
	locais, err := s.repo.DistinctLocais(ctx)
	if err != nil {
		s.logger.Error("Locais: repository error: %v", err)
		return nil, fmt.Errorf("%w: Locais - repository error: %v", ErrInternal, err)
	}
	return locais, nil
}

// Salas returns the distinct room names, optionally scoped to one site.
func (s *Service) Salas(ctx context.Context, local *string) ([]string, error) {
	salas, err := s.repo.DistinctSalas(ctx, local)
	if err != nil {
		s.logger.Error("Salas: repository error: %v", err)
		return nil, fmt.Errorf("%w: Salas - repository error: %v", ErrInternal, err)
	}
	return salas, nil
}

// validateInput enforces the store-side rules: strict time ordering and the
// catering headcount requirement. A false cafe flag clears the headcount.
func validateInput(input *domain.ReservationInput) error {
	if !input.DataInicio.Before(input.DataFim) {
		return ErrInvalidTimeRange
	}

	if !input.Cafe {
		input.QuantidadePessoas = nil
		return nil
	}
	if input.QuantidadePessoas == nil || *input.QuantidadePessoas <= 0 {
		return ErrQuantidadeRequired
	}

	return nil
}

// applyUpdate merges a partial update over the stored record: absent fields
// keep their value, and toggling cafe off discards the stored headcount.
func applyUpdate(current *domain.Reservation, req *UpdateRequest) *domain.ReservationInput {
	input := &domain.ReservationInput{
		Local:             current.Local,
		Sala:              current.Sala,
		DataInicio:        current.DataInicio,
		DataFim:           current.DataFim,
		Responsavel:       current.Responsavel,
		Cafe:              current.Cafe,
		QuantidadePessoas: current.QuantidadePessoas,
		Descricao:         current.Descricao,
	}

	if req.Local != nil {
		input.Local = *req.Local
	}
	if req.Sala != nil {
		input.Sala = *req.Sala
	}
	if req.DataInicio != nil {
		input.DataInicio = *req.DataInicio
	}
	if req.DataFim != nil {
		input.DataFim = *req.DataFim
	}
	if req.Responsavel != nil {
		input.Responsavel = *req.Responsavel
	}
	if req.Descricao != nil {
		input.Descricao = *req.Descricao
	}
	if req.Cafe != nil {
		input.Cafe = *req.Cafe
	}
	if req.QuantidadePessoas != nil && input.Cafe {
		input.QuantidadePessoas = req.QuantidadePessoas
	}
	if !input.Cafe {
		input.QuantidadePessoas = nil
	}

	return input
}

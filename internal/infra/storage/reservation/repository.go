package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"local",
	"sala",
	"data_inicio",
	"data_fim",
	"responsavel",
	"cafe",
	"quantidade_pessoas",
	"descricao",
	"created_at",
	"updated_at",
}

// Repository persists reservations in the reservas table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation and returns it with the store-assigned id and
// timestamps filled in.
func (r *Repository) Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"local",
			"sala",
			"data_inicio",
			"data_fim",
			"responsavel",
			"cafe",
			"quantidade_pessoas",
			"descricao",
		).
		Values(
			input.Local,
			input.Sala,
			input.DataInicio,
			input.DataFim,
			input.Responsavel,
			input.Cafe,
			input.QuantidadePessoas,
			input.Descricao,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	reservation := &domain.Reservation{
		Local:             input.Local,
		Sala:              input.Sala,
		DataInicio:        input.DataInicio,
		DataFim:           input.DataFim,
		Responsavel:       input.Responsavel,
		Cafe:              input.Cafe,
		QuantidadePessoas: input.QuantidadePessoas,
		Descricao:         input.Descricao,
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID fetches a single reservation.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List returns every reservation ordered by start time ascending.
func (r *Repository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		OrderBy("data_inicio ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return reservations, nil
}

// Update replaces the mutable fields of a reservation and bumps updated_at.
func (r *Repository) Update(ctx context.Context, id int64, input *domain.ReservationInput) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Update("reservas").
		Set("local", input.Local).
		Set("sala", input.Sala).
		Set("data_inicio", input.DataInicio).
		Set("data_fim", input.DataFim).
		Set("responsavel", input.Responsavel).
		Set("cafe", input.Cafe).
		Set("quantidade_pessoas", input.QuantidadePessoas).
		Set("descricao", input.Descricao).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrReservationNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a reservation.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DistinctLocais returns the distinct site names present in the store.
func (r *Repository) DistinctLocais(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("DISTINCT local").
		From("reservas").
		OrderBy("local ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctLocais - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryNames(ctx, query, args)
}

// DistinctSalas returns the distinct room names, optionally scoped to one
// site.
func (r *Repository) DistinctSalas(ctx context.Context, local *string) ([]string, error) {
	selectBuilder := psqlbuilder.Select("DISTINCT sala").
		From("reservas").
		OrderBy("sala ASC")

	if local != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"local": *local})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctSalas - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryNames(ctx, query, args)
}

func (r *Repository) queryNames(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan name: %v", ErrScanRow, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}

	return names, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation domain.Reservation
		quantidade  sql.NullInt64
		descricao   sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.Local,
		&reservation.Sala,
		&reservation.DataInicio,
		&reservation.DataFim,
		&reservation.Responsavel,
		&reservation.Cafe,
		&quantidade,
		&descricao,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if quantidade.Valid {
		n := int(quantidade.Int64)
		reservation.QuantidadePessoas = &n
	}
	reservation.Descricao = descricao.String
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

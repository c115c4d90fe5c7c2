package reservations

import "time"

// UpdateRequest carries the fields of a PUT request. Nil pointers mean "keep
// the stored value"; the store applies partial updates.
type UpdateRequest struct {
	Local             *string
	Sala              *string
	DataInicio        *time.Time
	DataFim           *time.Time
	Responsavel       *string
	Cafe              *bool
	QuantidadePessoas *int
	Descricao         *string
}

package domain

// FieldErrors maps a form field key to a human-readable message. An empty set
// means the candidate reservation is valid.
type FieldErrors map[string]string

// Field keys used in FieldErrors. They match the wire names of the fields.
const (
	FieldLocal             = "local"
	FieldSala              = "sala"
	FieldDataInicio        = "data_inicio"
	FieldDataFim           = "data_fim"
	FieldResponsavel       = "responsavel"
	FieldQuantidadePessoas = "quantidade_pessoas"
)

// Add records a message for a field, keeping the first message if the field
// already failed.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Has reports whether the field has a recorded error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty reports whether no field failed validation.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

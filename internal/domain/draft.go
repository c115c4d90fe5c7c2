package domain

import (
	"strconv"
	"time"
)

// FormDraft is the mutable working copy of a reservation while the user is
// editing. Every field holds the raw text as typed; nothing is parsed or
// normalized until submission. Datetime fields use DateTimeLocalFormat in the
// user's local timezone.
type FormDraft struct {
	Local             string
	Sala              string
	DataInicio        string
	DataFim           string
	Responsavel       string
	Cafe              bool
	QuantidadePessoas string
	Descricao         string
}

// NewFormDraft creates an empty draft for a new reservation.
func NewFormDraft() *FormDraft {
	return &FormDraft{}
}

// DraftFromReservation pre-populates a draft from an existing record for
// editing. Timestamps are converted from their absolute representation to the
// local editable format in loc.
func DraftFromReservation(r *Reservation, loc *time.Location) *FormDraft {
	draft := &FormDraft{
		Local:       r.Local,
		Sala:        r.Sala,
		DataInicio:  r.DataInicio.In(loc).Format(DateTimeLocalFormat),
		DataFim:     r.DataFim.In(loc).Format(DateTimeLocalFormat),
		Responsavel: r.Responsavel,
		Cafe:        r.Cafe,
		Descricao:   r.Descricao,
	}
	if r.QuantidadePessoas != nil {
		draft.QuantidadePessoas = strconv.Itoa(*r.QuantidadePessoas)
	}
	return draft
}

// SetCafe toggles the catering flag. Unchecking discards any headcount the
// user typed while the box was checked, mirroring the form behavior.
func (d *FormDraft) SetCafe(checked bool) {
	d.Cafe = checked
	if !checked {
		d.QuantidadePessoas = ""
	}
}

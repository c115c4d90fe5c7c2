package submit_reservation

import (
	"strconv"
	"strings"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// User-facing validation messages.
const (
	msgLocalObrigatorio       = "Local é obrigatório"
	msgSalaObrigatoria        = "Sala é obrigatória"
	msgDataInicioObrigatoria  = "Data/hora de início é obrigatória"
	msgDataFimObrigatoria     = "Data/hora de fim é obrigatória"
	msgResponsavelObrigatorio = "Responsável é obrigatório"
	msgDataInvalida           = "Data/hora inválida"
	msgDataFimAnterior        = "Data/hora de fim deve ser posterior à data/hora de início"
	msgDataInicioNoPassado    = "Data/hora de início não pode ser no passado"
	msgQuantidadeObrigatoria  = "Quantidade de pessoas é obrigatória quando café é solicitado"
)

// validateDraft checks a draft against the reservation rules and, when every
// rule passes, produces the normalized payload (UTC timestamps, integer
// headcount or nil, trimmed text). All violated fields are reported together.
//
// Datetime rules: both fields are required individually; when both are
// present and either fails to parse, both are flagged invalid; when both
// parse, the ordering check (fim after início) runs first and the past-check
// on início only runs if ordering succeeded.
func validateDraft(draft *domain.FormDraft, now time.Time, loc *time.Location) (*domain.ReservationInput, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	local := strings.TrimSpace(draft.Local)
	sala := strings.TrimSpace(draft.Sala)
	responsavel := strings.TrimSpace(draft.Responsavel)
	rawInicio := strings.TrimSpace(draft.DataInicio)
	rawFim := strings.TrimSpace(draft.DataFim)

	if local == "" {
		errs.Add(domain.FieldLocal, msgLocalObrigatorio)
	}
	if sala == "" {
		errs.Add(domain.FieldSala, msgSalaObrigatoria)
	}
	if responsavel == "" {
		errs.Add(domain.FieldResponsavel, msgResponsavelObrigatorio)
	}
	if rawInicio == "" {
		errs.Add(domain.FieldDataInicio, msgDataInicioObrigatoria)
	}
	if rawFim == "" {
		errs.Add(domain.FieldDataFim, msgDataFimObrigatoria)
	}

	var inicio, fim time.Time
	if rawInicio != "" && rawFim != "" {
		var errInicio, errFim error
		inicio, errInicio = time.ParseInLocation(domain.DateTimeLocalFormat, rawInicio, loc)
		fim, errFim = time.ParseInLocation(domain.DateTimeLocalFormat, rawFim, loc)

		switch {
		case errInicio != nil || errFim != nil:
			errs.Add(domain.FieldDataInicio, msgDataInvalida)
			errs.Add(domain.FieldDataFim, msgDataInvalida)
		case !inicio.Before(fim):
			errs.Add(domain.FieldDataFim, msgDataFimAnterior)
		case inicio.Before(now):
			errs.Add(domain.FieldDataInicio, msgDataInicioNoPassado)
		}
	}

	// A headcount typed while the box was checked is discarded, not
	// validated, once the box is unchecked.
	var quantidade *int
	if draft.Cafe {
		n, err := strconv.Atoi(strings.TrimSpace(draft.QuantidadePessoas))
		if err != nil || n <= 0 {
			errs.Add(domain.FieldQuantidadePessoas, msgQuantidadeObrigatoria)
		} else {
			quantidade = &n
		}
	}

	if !errs.Empty() {
		return nil, errs
	}

	return &domain.ReservationInput{
		Local:             local,
		Sala:              sala,
		DataInicio:        inicio.UTC(),
		DataFim:           fim.UTC(),
		Responsavel:       responsavel,
		Cafe:              draft.Cafe,
		QuantidadePessoas: quantidade,
		Descricao:         strings.TrimSpace(draft.Descricao),
	}, nil
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/internal/service/listcache"
)

const displayTimeFormat = "02/01/2006 15:04"

// fieldOrder fixes the printing order of validation errors to match the form
// layout, top to bottom.
var fieldOrder = []string{
	domain.FieldLocal,
	domain.FieldSala,
	domain.FieldDataInicio,
	domain.FieldDataFim,
	domain.FieldResponsavel,
	domain.FieldQuantidadePessoas,
}

var fieldLabels = map[string]string{
	domain.FieldLocal:             "Local",
	domain.FieldSala:              "Sala",
	domain.FieldDataInicio:        "Data/hora de início",
	domain.FieldDataFim:           "Data/hora de fim",
	domain.FieldResponsavel:       "Responsável",
	domain.FieldQuantidadePessoas: "Quantidade de pessoas",
}

func renderSnapshot(w io.Writer, snap listcache.Snapshot, loc *time.Location) {
	if snap.State == listcache.StateError {
		fmt.Fprintln(w, snap.ErrorMessage)
		if len(snap.Reservations) > 0 {
			fmt.Fprintln(w, "Exibindo última lista conhecida:")
		}
	}

	if len(snap.Reservations) == 0 {
		if snap.State == listcache.StateReady {
			fmt.Fprintln(w, "Nenhuma reserva cadastrada.")
		}
		return
	}

	for _, r := range snap.Reservations {
		renderReservation(w, r, loc)
	}
}

func renderReservation(w io.Writer, r *domain.Reservation, loc *time.Location) {
	fmt.Fprintf(w, "#%d  %s / %s\n", r.ID, r.Local, r.Sala)
	fmt.Fprintf(w, "    %s até %s  |  Responsável: %s\n",
		r.DataInicio.In(loc).Format(displayTimeFormat),
		r.DataFim.In(loc).Format(displayTimeFormat),
		r.Responsavel,
	)
	if r.Cafe && r.QuantidadePessoas != nil {
		fmt.Fprintf(w, "    Café para %d pessoa(s)\n", *r.QuantidadePessoas)
	}
	if r.Descricao != "" {
		fmt.Fprintf(w, "    %s\n", r.Descricao)
	}
}

func renderFieldErrors(w io.Writer, errs domain.FieldErrors) {
	for _, field := range fieldOrder {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(w, "  %s: %s\n", fieldLabels[field], msg)
		}
	}
}

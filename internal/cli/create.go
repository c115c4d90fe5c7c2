package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
	"github.com/bananaltda/BRS-ReservationService/internal/service/session"
)

// draftFlags maps the form fields onto command-line flags. Datetime flags use
// the same local format the form's datetime inputs produce.
type draftFlags struct {
	local       string
	sala        string
	inicio      string
	fim         string
	responsavel string
	cafe        bool
	pessoas     string
	descricao   string
}

func (f *draftFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.local, "local", "", "filial/local da reserva")
	c.Flags().StringVar(&f.sala, "sala", "", "sala da reserva")
	c.Flags().StringVar(&f.inicio, "inicio", "", "data/hora de início (YYYY-MM-DDTHH:MM, horário local)")
	c.Flags().StringVar(&f.fim, "fim", "", "data/hora de fim (YYYY-MM-DDTHH:MM, horário local)")
	c.Flags().StringVar(&f.responsavel, "responsavel", "", "responsável pela reserva")
	c.Flags().BoolVar(&f.cafe, "cafe", false, "solicitar café")
	c.Flags().StringVar(&f.pessoas, "pessoas", "", "quantidade de pessoas para o café")
	c.Flags().StringVar(&f.descricao, "descricao", "", "descrição da reserva")
}

// apply pushes only the flags the user actually set into the open draft, so
// editing keeps the pre-populated values for everything else.
func (f *draftFlags) apply(cmd *cobra.Command, sess *session.Service) error {
	set := map[string]string{
		domain.FieldLocal:       f.local,
		domain.FieldSala:        f.sala,
		domain.FieldDataInicio:  f.inicio,
		domain.FieldDataFim:     f.fim,
		domain.FieldResponsavel: f.responsavel,
		"descricao":             f.descricao,
	}
	flagNames := map[string]string{
		domain.FieldLocal:       "local",
		domain.FieldSala:        "sala",
		domain.FieldDataInicio:  "inicio",
		domain.FieldDataFim:     "fim",
		domain.FieldResponsavel: "responsavel",
		"descricao":             "descricao",
	}

	for field, value := range set {
		if !cmd.Flags().Changed(flagNames[field]) {
			continue
		}
		if err := sess.SetField(field, value); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("cafe") {
		if err := sess.SetCafe(f.cafe); err != nil {
			return err
		}
	}
	// Headcount goes in after the checkbox so it is not discarded by SetCafe.
	if cmd.Flags().Changed("pessoas") {
		if err := sess.SetField(domain.FieldQuantidadePessoas, f.pessoas); err != nil {
			return err
		}
	}

	return nil
}

// submitDraft runs the submission lifecycle for the open form and reports the
// outcome to the user.
func submitDraft(cmd *cobra.Command, app *app, successMsg string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	err := app.sess.Submit(cmd.Context())
	switch {
	case err == nil:
		fmt.Fprintln(out, successMsg)
		if banner := app.sess.Banner(); banner != "" {
			fmt.Fprintln(errOut, banner)
		}
		renderSnapshot(out, app.list.Snapshot(), time.Local)
		return nil

	case errors.Is(err, session.ErrValidationFailed):
		fmt.Fprintln(errOut, "Corrija os campos abaixo:")
		renderFieldErrors(errOut, app.sess.FieldErrors())
		return err

	default:
		if banner := app.sess.Banner(); banner != "" {
			fmt.Fprintln(errOut, banner)
		}
		return err
	}
}

func newCreateCmd(configPath *string) *cobra.Command {
	flags := &draftFlags{}

	c := &cobra.Command{
		Use:   "create",
		Short: "Cria uma nova reserva",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.sess.StartCreate(); err != nil {
				return err
			}
			if err := flags.apply(cmd, app.sess); err != nil {
				return err
			}

			return submitDraft(cmd, app, "Reserva criada com sucesso")
		},
	}

	flags.register(c)
	return c
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEditCmd(configPath *string) *cobra.Command {
	flags := &draftFlags{}

	c := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edita uma reserva existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %q", args[0])
			}

			app, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.list.Refresh(cmd.Context()); err != nil {
				return err
			}
			reservation := app.list.Find(id)
			if reservation == nil {
				return fmt.Errorf("reserva %d não encontrada", id)
			}

			if err := app.sess.StartEdit(reservation); err != nil {
				return err
			}
			if err := flags.apply(cmd, app.sess); err != nil {
				return err
			}

			return submitDraft(cmd, app, "Reserva atualizada com sucesso")
		},
	}

	flags.register(c)
	return c
}

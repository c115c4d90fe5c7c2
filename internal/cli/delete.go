package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newDeleteCmd(configPath *string) *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "delete <id>",
		Short: "Exclui uma reserva",
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

			if err := app.sess.StartDelete(reservation); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintln(out, "Excluir a reserva abaixo?")
				renderReservation(out, reservation, time.Local)
				fmt.Fprint(out, "Confirmar? [s/N]: ")

				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "s" && answer != "sim" {
					if err := app.sess.Cancel(); err != nil {
						return err
					}
					fmt.Fprintln(out, "Exclusão cancelada.")
					return nil
				}
			}

			if err := app.sess.ConfirmDelete(cmd.Context()); err != nil {
				if banner := app.sess.Banner(); banner != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), banner)
				}
				return err
			}

			fmt.Fprintln(out, "Reserva excluída com sucesso")
			if banner := app.sess.Banner(); banner != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), banner)
			}
			renderSnapshot(out, app.list.Snapshot(), time.Local)
			return nil
		},
	}

	c.Flags().BoolVarP(&yes, "yes", "y", false, "exclui sem pedir confirmação")
	return c
}

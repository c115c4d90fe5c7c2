package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista as reservas cadastradas",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer app.close()

			err = app.list.Refresh(cmd.Context())
			renderSnapshot(cmd.OutOrStdout(), app.list.Snapshot(), time.Local)
			return err
		},
	}
}

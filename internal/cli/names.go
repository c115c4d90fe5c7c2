package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocaisCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "locais",
		Short: "Lista os locais conhecidos pelo servidor",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer app.close()

			locais, err := app.store.Locais(cmd.Context())
			if err != nil {
				return err
			}
			for _, local := range locais {
				fmt.Fprintln(cmd.OutOrStdout(), local)
			}
			return nil
		},
	}
}

func newSalasCmd(configPath *string) *cobra.Command {
	var local string

	c := &cobra.Command{
		Use:   "salas",
		Short: "Lista as salas conhecidas pelo servidor",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer app.close()

			salas, err := app.store.Salas(cmd.Context(), local)
			if err != nil {
				return err
			}
			for _, sala := range salas {
				fmt.Fprintln(cmd.OutOrStdout(), sala)
			}
			return nil
		},
	}

	c.Flags().StringVar(&local, "local", "", "filtra salas por local")
	return c
}

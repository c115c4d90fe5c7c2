package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bananaltda/BRS-ReservationService/internal/config"
	"github.com/bananaltda/BRS-ReservationService/internal/integrations/reservastore"
	"github.com/bananaltda/BRS-ReservationService/internal/service/listcache"
	"github.com/bananaltda/BRS-ReservationService/internal/service/session"
	"github.com/bananaltda/BRS-ReservationService/internal/usecase/submit_reservation"
	"github.com/bananaltda/BRS-ReservationService/pkg/logger"
)

// NewRootCmd assembles the reservation client CLI. Each subcommand drives one
// full interaction against the remote store: open → fill → submit → refresh.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "reservas",
		Short:         "Cliente de reservas de salas de reunião",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.toml", "caminho do arquivo de configuração")

	root.AddCommand(newListCmd(&configPath))
	root.AddCommand(newCreateCmd(&configPath))
	root.AddCommand(newEditCmd(&configPath))
	root.AddCommand(newDeleteCmd(&configPath))
	root.AddCommand(newLocaisCmd(&configPath))
	root.AddCommand(newSalasCmd(&configPath))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}

// app wires the client-side stack for one command invocation.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	store *reservastore.Client
	list  *listcache.Service
	sess  *session.Service
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	store := reservastore.NewClient(
		cfg.ReservaStore.URL,
		time.Duration(cfg.ReservaStore.Timeout)*time.Second,
		log,
	)
	list := listcache.NewService(store, log)
	submitter := submit_reservation.NewUseCase(store, time.Local, log)
	sess := session.NewService(submitter, store, list, time.Local, log)

	return &app{
		cfg:   cfg,
		log:   log,
		store: store,
		list:  list,
		sess:  sess,
	}, nil
}

func (a *app) close() {
	a.log.Close()
}

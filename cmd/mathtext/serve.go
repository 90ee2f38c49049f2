package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mathtext "github.com/riverfjs/mathtext-go"
	"github.com/riverfjs/mathtext-go/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := mathtext.LoadBank(a.cfg.Quiz.Bank)
			if err != nil {
				return fmt.Errorf("load quiz bank: %w", err)
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.log.WithFields(logrus.Fields{
				"strategy": e.Strategy(),
				"quizzes":  bank.Len(),
			}).Info("starting server")
			srv := server.New(a.cfg.Server.Addr(), a.cfg.Server.Mode, server.NewHandler(e, bank), a.log)
			return srv.Run(ctx)
		},
	}
}

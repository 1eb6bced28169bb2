package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/export"
	"github.com/Faultbox/xnbake/internal/panel"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP control panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Panel.Addr
			}

			srv := panel.New(addr, panel.Deps{
				Session:  s,
				Baker:    a.runner(),
				Exporter: export.New(a.log),
				Opener:   a.launcher(),
				Log:      a.log,
			})

			go func() {
				sig := make(chan os.Signal, 1)
				signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
				<-sig
				a.log.Info("shutting down control panel")
				if err := srv.Shutdown(); err != nil {
					a.log.Warn("shutdown failed", zap.Error(err))
				}
			}()

			return srv.Listen()
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return c
}

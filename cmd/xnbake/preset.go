package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/session"
)

func (a *app) presetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "preset",
		Short: "Import or export hjson presets",
	}

	c.AddCommand(&cobra.Command{
		Use:   "import <file.hjson>",
		Short: "Merge a preset into the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if err := s.ImportPreset(args[0]); err != nil {
				return err
			}
			a.log.Info("preset imported", zap.String("preset", args[0]), zap.Stringer("mode", s.Settings.Mode))
			return s.Save()
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "export [file.hjson]",
		Short: "Write the session as a preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			data, err := session.Preset(s.Settings)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			w, err := create(cmd, path)
			if err != nil {
				return err
			}
			if _, err := w.Write(append(data, '\n')); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	})

	return c
}

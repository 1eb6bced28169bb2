package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/job"
)

// create opens path for writing, or returns stdout for "" and "-".
func create(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (a *app) renderCmd() *cobra.Command {
	var out, mode string
	c := &cobra.Command{
		Use:   "render",
		Short: "Print the xNormal settings document for the active mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if mode != "" {
				if err := s.SetMode(mode); err != nil {
					return err
				}
			}

			doc, err := job.Render(s.Settings)
			if err != nil {
				return err
			}

			w, err := create(cmd, out)
			if err != nil {
				return err
			}
			if _, err := doc.WriteTo(w); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	c.Flags().StringVar(&mode, "mode", "", "Render this mode instead of the active one")
	return c
}

func (a *app) bakeCmd() *cobra.Command {
	var mode string
	c := &cobra.Command{
		Use:   "bake",
		Short: "Write the settings document and launch xNormal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if mode != "" {
				if err := s.SetMode(mode); err != nil {
					return err
				}
			}

			doc, err := a.runner().Bake(s.Settings)
			var lerr *job.LaunchError
			if errors.As(err, &lerr) {
				a.log.Info("settings document kept", zap.String("path", lerr.Document))
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}
	c.Flags().StringVar(&mode, "mode", "", "Bake this mode instead of the active one")
	return c
}

func (a *app) openDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-dir [dir]",
		Short: "Open the bake output directory in the file browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			} else {
				s, err := a.session()
				if err != nil {
					return err
				}
				dir = filepath.Dir(s.Settings.Globals.Output)
			}
			return a.launcher().OpenDir(dir)
		},
	}
}


package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/config"
)

func (a *app) prefsCmd() *cobra.Command {
	var browse bool
	var exe string
	c := &cobra.Command{
		Use:   "prefs",
		Short: "Show or set the xNormal executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if browse {
				picked, err := dialog.File().
					Filter("Executables", "exe").
					Filter("All Files", "*").
					Title("Select xNormal executable").
					Load()
				if errors.Is(err, dialog.ErrCancelled) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("file dialog: %w", err)
				}
				exe = picked
			}

			if exe == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "executable: %s\nmesh dir:   %s\ntemp dir:   %s\nsession:    %s\n",
					a.cfg.XNormal.Executable, a.cfg.Paths.MeshDir, a.cfg.Paths.TempDir, a.cfg.Paths.Session)
				return nil
			}

			// Reload without flag overrides so they are not persisted. Save
			// writes back to the file the next run will read.
			stored, err := config.Load(&config.Flags{Config: a.flags.Config})
			if err != nil {
				return err
			}
			stored.XNormal.Executable = exe

			if err := stored.Save(); err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}
			a.log.Info("xNormal executable set",
				zap.String("executable", exe),
				zap.String("config", stored.Source()))
			return nil
		},
	}
	c.Flags().BoolVar(&browse, "browse", false, "Pick the executable with a file dialog")
	c.Flags().StringVar(&exe, "set", "", "Store this executable path")
	return c
}

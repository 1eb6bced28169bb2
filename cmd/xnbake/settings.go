package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/xnbake/internal/job"
	"github.com/Faultbox/xnbake/pkg/bake"
	"github.com/Faultbox/xnbake/pkg/xnconf"
)

func (a *app) modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List bake modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range bake.Modes() {
				active := ""
				if m == s.Settings.Mode {
					active = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", active, m.Key(), m, xnconf.Marker(m), m.Label())
			}
			return w.Flush()
		},
	}
}

func (a *app) modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [mode]",
		Short: "Show or select the active bake mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), s.Settings.Mode)
				return nil
			}
			if err := s.SetMode(args[0]); err != nil {
				return err
			}
			return s.Save()
		},
	}
}

func (a *app) defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <mode>",
		Short: "Print the default parameters of a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := bake.ParseMode(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(bake.Defaults(m))
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print a setting (globals.<key> or <mode>.<key>), or every field of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}

			if !strings.Contains(args[0], ".") {
				fields, err := s.Settings.Section(args[0])
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, f := range fields {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Key, f.String(), f.Kind, f.Bounds)
				}
				return w.Flush()
			}

			v, err := s.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Change a setting; out-of-range values are rejected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			return s.Save()
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	var all bool
	c := &cobra.Command{
		Use:   "validate",
		Short: "Check the active mode and global settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}

			var bad []string
			if all {
				bad = s.Settings.Violations()
			} else if _, err := job.Render(s.Settings); err != nil {
				return err
			}

			if len(bad) > 0 {
				return fmt.Errorf("invalid settings: %s", strings.Join(bad, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	c.Flags().BoolVar(&all, "all", false, "Check every mode, not only the active one")
	return c
}

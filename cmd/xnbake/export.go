package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/xnbake/internal/export"
)

func (a *app) exportCmd() *cobra.Command {
	var opts export.Options
	c := &cobra.Command{
		Use:   "export <low|high|cage> <source.obj>",
		Short: "Write a mesh to the path xNormal reads for that role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := export.ParseRole(args[0])
			if err != nil {
				return err
			}
			s, err := a.session()
			if err != nil {
				return err
			}

			path, err := export.New(a.log).Export(s.Settings.Globals, role, args[1], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	c.Flags().StringSliceVar(&opts.Objects, "object", nil, "Export only these objects (repeatable)")
	c.Flags().BoolVar(&opts.ZUp, "z-up", false, "Convert a Z-up source to Y-up")
	c.Flags().StringVar(&opts.Encoding, "encoding", "", "Text encoding of the source (default UTF-8)")
	c.Flags().Float64Var(&opts.Scale, "scale", 0, "Multiply positions by this factor")
	c.Flags().BoolVar(&opts.Center, "center", false, "Center the mesh bounds on the origin")
	return c
}

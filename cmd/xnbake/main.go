// xnbake configures xNormal texture bakes: it edits per-mode bake
// settings, exports meshes, writes the xNormal settings document and
// launches the baker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/config"
	"github.com/Faultbox/xnbake/internal/job"
	"github.com/Faultbox/xnbake/internal/launcher"
	"github.com/Faultbox/xnbake/internal/logger"
	"github.com/Faultbox/xnbake/internal/session"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	flags config.Flags
	cfg   *config.Config
	log   *zap.Logger
}

func main() {
	a := &app{}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xnbake",
		Short:         "Configure and launch xNormal texture bakes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	a.flags.Register(root.PersistentFlags())

	root.AddCommand(
		a.modesCmd(),
		a.modeCmd(),
		a.defaultsCmd(),
		a.getCmd(),
		a.setCmd(),
		a.validateCmd(),
		a.renderCmd(),
		a.bakeCmd(),
		a.exportCmd(),
		a.openDirCmd(),
		a.presetCmd(),
		a.prefsCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(&a.flags)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	a.log = logger.Named("xnbake")
	a.log.Debug("config loaded", zap.Any("config", cfg))
	return nil
}

func (a *app) session() (*session.Session, error) {
	return session.Load(a.cfg.Paths.Session, a.cfg.Paths.MeshDir)
}

func (a *app) launcher() *launcher.Launcher {
	return launcher.New(a.log)
}

func (a *app) runner() *job.Runner {
	return job.NewRunner(a.cfg.XNormal.Executable, a.cfg.Paths.TempDir, a.launcher(), a.log)
}

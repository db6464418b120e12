package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/govox/internal/config"
	"github.com/philipparndt/govox/internal/logging"
	"github.com/philipparndt/govox/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the configuration resolved before a subcommand runs
type cli struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "govox",
		Short: "Interactive volume viewer",
		Long: `govox shows volume data sets, image series and surface meshes.
Drop files onto the window or pass them on the command line; the viewer
resets itself to its defaults after a configurable idle time.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.govox/govox.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Float64("fps", 30, "redraw rate while loading")
	flags.Float64("max-idle", 0, "seconds without input before the viewer resets, 0 disables")
	flags.Bool("no-watch", false, "do not reload files when they change")

	rootCmd.AddCommand(
		newRaylibCmd(c),
		newGUICmd(c),
		newClassifyCmd(),
		newConfigCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// load binds the flags and resolves the configuration
func (c *cli) load(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	bindings := map[string]string{
		"logLevel": "log-level",
		"fps":      "fps",
		"maxIdle":  "max-idle",
	}
	for key, flag := range bindings {
		if err := c.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	if noWatch, _ := flags.GetBool("no-watch"); noWatch {
		c.v.Set("watch", false)
	}

	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logging.New(cfg.LogLevel, cfg.Pretty)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soocke/roi-binarizer/config"
)

// GUIFunc starts the graphical editor and blocks until its window closes.
type GUIFunc func(cfg *config.Config, cfgPath string, logger *slog.Logger, level *slog.LevelVar) error

// env carries state shared by all subcommands once initConfig has run.
type env struct {
	gui     GUIFunc
	v       *viper.Viper
	cfgFile string
	cfgPath string
	cfg     *config.Config
	level   *slog.LevelVar
	logger  *slog.Logger
}

// NewRootCmd builds the command tree. Without a subcommand gui runs.
func NewRootCmd(gui GUIFunc) *cobra.Command {
	e := &env{gui: gui, v: config.NewViper(), level: new(slog.LevelVar)}
	rootCmd := &cobra.Command{
		Use:   "roi-binarizer",
		Short: "Select a region of an image and binarize it",
		Long: `ROI Binarizer loads an image, lets you drag a rectangle over it and
thresholds that region to pure black and white. Run without arguments for
the graphical editor or use the binarize subcommand for batch work.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.initConfig(cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(e)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&e.cfgFile, "config", "c", "", "config file (default is $HOME/"+config.FileName+")")
	flags.Bool("debug", false, "log runtime memory and goroutine stats")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	_ = e.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = e.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(newGUICmd(e), newBinarizeCmd(e))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(gui GUIFunc) {
	if err := NewRootCmd(gui).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (e *env) initConfig(out io.Writer) error {
	e.cfgPath = e.cfgFile
	if e.cfgPath == "" {
		e.cfgPath = config.DefaultPath()
	}
	cfg, err := config.LoadWith(e.v, e.cfgPath)
	e.cfg = cfg
	e.level.Set(config.ParseLevel(cfg.LogLevel))
	e.logger = NewLogger(out, e.level)
	if err != nil {
		e.logger.Warn("config load failed, using defaults", "path", e.cfgPath, "error", err)
	} else {
		e.logger.Debug("config loaded", "path", e.cfgPath)
	}
	return nil
}

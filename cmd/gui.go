package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("gui not available in this build")

func newGUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Start the graphical editor (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(e)
		},
	}
}

func runGUI(e *env) error {
	if e.gui == nil {
		return errNoGUI
	}
	return e.gui(e.cfg, e.cfgPath, e.logger, e.level)
}

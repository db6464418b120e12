package main

import (
	"github.com/philipparndt/govox/internal/app"
	"github.com/philipparndt/govox/internal/gui"
	"github.com/spf13/cobra"
)

func newRaylibCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "raylib [files...]",
		Short: "Open the raylib viewer",
		Long:  "Open the real-time viewer window. Files given are loaded like a drop: one .geo file is a surface, one other file a volume, several files a series.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(c.cfg, args, c.log)
		},
	}
}

func newGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [files...]",
		Short: "Open the viewer with a control panel",
		Long:  "Open the fyne viewer with sliders, toggles and open dialogs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(c.cfg, args, c.log)
		},
	}
}

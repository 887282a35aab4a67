package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/paths"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the drive token and preferred editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}

		token := cfg.Token
		editorCmd := cfg.Editor
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Drive API token").
					Description("Used for workspace list, upload, and download").
					EchoMode(huh.EchoModePassword).
					Value(&token),
				huh.NewInput().
					Title("Preferred editor").
					Description("Leave empty to fall back to $VISUAL / $EDITOR").
					Value(&editorCmd),
			),
		).Run()
		if err != nil {
			return err
		}

		cfg.Token = token
		cfg.Editor = editorCmd
		if cfg.Version == "" {
			cfg.Version = "1"
		}
		if err := config.Save(paths.ConfigFile(), cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", paths.ConfigFile())
		return nil
	},
}

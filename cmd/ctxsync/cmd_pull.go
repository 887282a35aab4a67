package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contextsync/ctxsync/cmd/ctxsync/tui"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/logx"
	"github.com/contextsync/ctxsync/internal/paths"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull [name]",
	Short: "List workspace files, or download one by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		client := drive.New(cfg.Token)
		ctx := context.Background()

		files, err := client.List(ctx)
		if err != nil {
			// Listing fails soft: log and behave as an empty workspace.
			logx.Warnf("listing workspace: %v", err)
			files = nil
		}

		if len(args) == 0 {
			for _, f := range files {
				fmt.Println(f.Name)
			}
			return nil
		}

		name := args[0]
		for _, f := range files {
			if f.Name != name {
				continue
			}
			data, err := client.Download(ctx, f.ID)
			if err != nil {
				return err
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			if tui.IsAgentName(name) {
				dir = paths.SkillsDir()
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			dest := filepath.Join(dir, name)
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("pulled %s to %s\n", name, dest)
			return nil
		}
		return fmt.Errorf("no workspace file named %q", name)
	},
}

package main

import (
	"context"
	"fmt"

	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/paths"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <file>...",
	Short: "Upload local files to the workspace",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		client := drive.New(cfg.Token)
		for _, path := range args {
			if err := client.Upload(context.Background(), path); err != nil {
				return err
			}
			fmt.Printf("pushed %s\n", path)
		}
		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/contextsync/ctxsync/cmd/ctxsync/tui"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/paths"
	"github.com/contextsync/ctxsync/internal/registry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the resolved local context files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		wd, _ := os.Getwd()
		docs := registry.KnownDocuments(cfg, wd)
		for _, e := range tui.ResolveEntries(docs, registry.Definitions(cfg)) {
			fmt.Printf("%-8s %s\n", e.Kind, e.Path)
		}
		return nil
	},
}

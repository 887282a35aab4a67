package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contextsync/ctxsync/cmd/ctxsync/tui"
	"github.com/contextsync/ctxsync/internal/config"
	"github.com/contextsync/ctxsync/internal/drive"
	"github.com/contextsync/ctxsync/internal/feedback"
	"github.com/contextsync/ctxsync/internal/logx"
	"github.com/contextsync/ctxsync/internal/paths"
	"github.com/contextsync/ctxsync/internal/registry"
	"github.com/spf13/cobra"
)

var browseDebug bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive context-file browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	browseCmd.Flags().BoolVar(&browseDebug, "debug", false, "write debug output to "+paths.LogFile())
}

func runBrowse() error {
	cfg, err := config.Load(paths.ConfigFile())
	if err != nil {
		return err
	}

	if browseDebug {
		f, err := logx.OpenFile(paths.LogFile())
		if err != nil {
			return err
		}
		defer f.Close()
		logx.SetMinLevel(logx.LevelDebug)
	}
	if cfg.Token != "" {
		logx.RegisterSecret(cfg.Token)
	}

	wd, _ := os.Getwd()
	docs := registry.KnownDocuments(cfg, wd)
	client := drive.New(cfg.Token)

	browser := tui.NewBrowser(client, cfg, docs)
	p := tea.NewProgram(browser, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	// Feedback emitted after the overlay closed (late transfer results)
	// still surfaces on the terminal.
	for {
		ev, ok := feedback.TryNext()
		if !ok {
			break
		}
		line := ev.Message
		if ev.Detail != "" {
			line += ": " + ev.Detail
		}
		fmt.Println(line)
	}

	if b, ok := final.(tui.Browser); ok {
		if path, ok := b.Selected(); ok {
			fmt.Println(path)
		}
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/assist"
	"bitrpc/config"
	"bitrpc/model"
	"bitrpc/provider"
	"bitrpc/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

// checkTimeout bounds the --check round trip.
const checkTimeout = 60 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	check := flag.Bool("check", false, "simulate one getblockchaininfo call, print the response, and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("bitrpc %s (%s)\n", Version, License)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		errorModal := ui.NewErrorModal("Configuration Error", fmt.Sprintf(
			"Failed to load %s\n\n%v\n\nFix or remove the file and start again.",
			config.GetSettingsFilePath(), err))
		p := tea.NewProgram(
			errorModal,
			tea.WithAltScreen(),
		)

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	config.InitLogs(config.GetCacheDir())

	kb, err := config.LoadKeybindings(config.GetConfigDir())
	if err != nil {
		if config.ErrorLog != nil {
			config.ErrorLog.Printf("Failed to load keybindings, using defaults: %v", err)
		}
		kb = config.DefaultKeybindings()
	}

	// A missing credential is not fatal: every request falls back to its
	// placeholder text and the UI shows the warning.
	p, err := provider.Initialize(cfg)
	if err != nil {
		if config.ErrorLog != nil {
			config.ErrorLog.Printf("Provider unavailable: %v", err)
		}
		p = nil
	}

	if *check {
		os.Exit(runCheck(p))
	}

	svc := assist.NewService(assist.NewClient(p))

	program := tea.NewProgram(
		ui.NewAppView(cfg, kb, p, svc, Version),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running bitrpc: %v\n", err)
		os.Exit(1)
	}
}

// runCheck performs one single-call simulation outside the TUI and returns
// the process exit code.
func runCheck(p model.Provider) int {
	svc := assist.NewService(assist.NewClient(p, assist.WithTimeout(checkTimeout)))

	res := svc.Single(context.Background(), "getblockchaininfo", "")
	fmt.Println(res.Text)

	if res.Failed() {
		fmt.Fprintf(os.Stderr, "check failed: %v\n", res.Err)
		return 1
	}
	return 0
}

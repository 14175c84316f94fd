package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chatui/api"
	"chatui/config"
	"chatui/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog()

	client, err := api.NewClient(cfg.BackendURL)
	if err != nil {
		errorMsg := fmt.Sprintf("The configured backend URL is not usable:\n\n%v\n\n"+
			"Fix backend_url in %s\n"+
			"or set CHATUI_BACKEND_URL.", err, config.GetSettingsFilePath())

		errorModal := ui.NewErrorModal("Configuration Error", errorMsg)
		p := tea.NewProgram(
			errorModal,
			tea.WithAltScreen(),
		)

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	p := tea.NewProgram(
		ui.NewAppView(cfg, client, Version, License),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running chatui: %v\n", err)
		os.Exit(1)
	}
}

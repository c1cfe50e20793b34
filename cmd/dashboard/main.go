package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Princegupta101/instinctive/internal/client"
	"github.com/Princegupta101/instinctive/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	addr := flag.String("addr", "http://localhost:3000", "base URL of the incident API")
	resolved := flag.Bool("resolved", false, "start on the resolved incidents list")
	flag.Parse()

	model := tui.New(client.New(*addr), *resolved)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}

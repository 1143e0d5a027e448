// Package main is the entry point for the Sales Dashboard TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/app"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/config"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/services"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/tabs/dashboard"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/tabs/history"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/tabs/info"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/tabs/orders"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	mock := len(os.Args) > 1 && os.Args[1] == "--mock"

	// Run the application
	if err := run(mock); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run(mock bool) error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize the service manager: sheet source, refresh log, summarizer
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 4. Initialize tabs with shared state and services
	state := model.GetState()
	tabs := []app.Tab{
		dashboard.New(state),           // Tab 0: Dashboard - revenue overview
		orders.New(state),              // Tab 1: Orders - per-customer browser
		history.New(state, svcManager), // Tab 2: History - refresh log
		info.New(state, cfg),           // Tab 3: Info - configuration and app info
	}
	model.SetTabs(tabs)

	// 5. Start data flow: either synthetic data or the periodic sheet poll
	if mock {
		svcManager.UseFallbackData()
	} else {
		svcManager.Start()
	}

	// 6. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 7. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	// 8. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		// Send quit message to the program
		p.Send(tea.Quit())
	}()

	// 9. Run the TUI program
	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Sales Dashboard TUI - Vietnamese sales sheet monitor

Usage:
  sdt [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information
  --mock          Start with synthetic data instead of polling the sheet

Keyboard Shortcuts:
  1-4             Switch between tabs (Dashboard, Orders, History, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  Enter           Select/confirm
  r               Refresh data
  m               Load mock data
  s               Generate AI summary
  f               Cycle the date range filter
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  SHEET_URL         Published-CSV endpoint of the sales sheet
  SHEET_FILE        Local CSV file (takes precedence over SHEET_URL)
  DATABASE_PATH     SQLite refresh log path
  REFRESH_INTERVAL  Sheet polling interval (default: 5m)
  GEMINI_API_KEY    Enables the AI summary tab action
  MOCK_DAYS         Days of synthetic data for mock mode (default: 30)
  LOG_RETENTION     Refresh log entries older than this are pruned at
                    startup (default: 2160h, 90 days)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/sales-dashboard/.env
  - ~/.sales-dashboard/.env

For more information, visit: https://github.com/minhtq-dev/sales-dashboard-tui`)
}

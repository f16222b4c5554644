package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/psds-microservice/helpdesk-service/internal/client"
	"github.com/psds-microservice/helpdesk-service/internal/config"
	"github.com/psds-microservice/helpdesk-service/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive ticket board: list, kanban and create form against the helpdesk API",
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cl := client.New(cfg.APIURL)
	p := tea.NewProgram(tui.New(cl), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gradientspace.dev/internal/catalog"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/tui"
	"gradientspace.dev/internal/view"
)

var tuiStyle string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the site in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiStyle, "style", "", "Markdown style (dark, light, notty or a JSON path; default: detect)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	inquiries, closeInquiries, err := buildInquiries(cfg.Inquiry, nil, logger)
	if err != nil {
		return err
	}
	defer closeInquiries()

	model := tui.New(
		view.New(view.NewRouter(), cat),
		services.NewContentService(cat),
		inquiries,
		tui.Options{Style: tuiStyle, Logger: logger},
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

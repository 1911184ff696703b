package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gradientspace.dev/internal/catalog"
	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/render"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export every tab as a static HTML page",
	Long: `Writes one HTML file per tab (home.html, services.html, about.html,
contact.html), an index.html copy of the home tab and the static assets.
Exported pages have every section revealed and a disabled contact form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(args[0], logger)
	},
}

func generate(outputDir string, logger *zap.Logger) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	renderer, err := render.New(services.NewContentService(cat))
	if err != nil {
		return err
	}

	// Ensure output directory exists
	staticDir := filepath.Join(outputDir, "static")
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	state := view.New(view.NewRouter(), cat)
	for _, tab := range models.Tabs() {
		if err := state.SelectTab(tab); err != nil {
			return err
		}
		// No observer runs in an exported page, so every block starts visible
		for _, id := range state.Branch().Sections {
			if _, err := state.Observe(id, 1); err != nil {
				return err
			}
		}

		var buf bytes.Buffer
		if err := renderer.Page(&buf, state.Snapshot(), render.Options{Static: true}); err != nil {
			return err
		}

		names := []string{string(tab) + ".html"}
		if tab == models.TabHome {
			names = append(names, "index.html")
		}
		for _, name := range names {
			path := filepath.Join(outputDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("Page written", zap.String("tab", string(tab)), zap.String("path", path))
		}
	}

	err = fs.WalkDir(render.Static(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(render.Static(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(staticDir, path), data, 0644)
	})
	if err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}

	logger.Info("Export complete", zap.String("dir", outputDir))
	return nil
}

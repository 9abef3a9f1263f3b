package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/systemconf/iftar-cli/internal/cache"
	"github.com/systemconf/iftar-cli/internal/tui"
)

var flagWatchSahur bool

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live countdown to iftar or sahur",
		Long:  "Full-screen live countdown that ticks every second.\nPress tab to switch between the iftar and sahur countdowns, q to quit.",
		RunE:  runWatch,
	}

	cmd.Flags().BoolVar(&flagWatchSahur, "sahur", false, "Start with the sahur countdown")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	now := time.Now()

	loc, err := resolveLocation(cfg.Latitude, cfg.Longitude, cfg.City, cfg.Country, c)
	if err != nil {
		return err
	}

	result, err := fetchTimings(now, loc, cfg.MethodOrDefault(-1), cfg.SchoolOrDefault(-1), c)
	if err != nil {
		return err
	}

	model := tui.NewModel(result.Timings, result.DateInfo, loc.Label(), cfg.Language)
	if flagWatchSahur {
		model.Mode = tui.ModeSahur
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}

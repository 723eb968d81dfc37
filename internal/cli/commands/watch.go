package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaguerank/internal/league"
	"github.com/leapstack-labs/leaguerank/internal/parser"
)

// watchDebounce coalesces bursts of write events from editors that save in
// several steps (truncate + write, or write to temp + rename).
const watchDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <input-file>",
		Short: "Recompute standings whenever the results file changes",
		Long: `Watch a results file and reprint the league table on every change.

The table is rendered once on startup and again after each write to the
file (debounced). Parse errors do not stop the watch; they are reported
and the previous table stays valid. Press Ctrl+C to stop.`,
		Example: `  # Live standings during a match day
  leaguerank watch results.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args[0])
		},
	}

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, inputPath string) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger.With("watch_id", uuid.New().String())

	// Initial render before any change arrives.
	if err := renderOnce(cmdCtx, inputPath); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors replace files on
	// save, which would silently drop a file-level watch.
	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Debug("watching results file", "file", inputPath)

	target := filepath.Base(inputPath)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != target {
				continue
			}

			// Debounce rebuilds
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				logger.Debug("change detected", "event", event.Op.String())
				if err := renderOnce(cmdCtx, inputPath); err != nil {
					cmdCtx.Renderer.Errorf("Error: %v\n", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// renderOnce runs the full pipeline over the current file contents and
// renders the result with a styled header.
func renderOnce(cmdCtx *CommandContext, inputPath string) error {
	games, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}

	standings := league.Rank(league.Tally(games))

	r := cmdCtx.Renderer
	if cmdCtx.Cfg.Color {
		r.StandingsHeader(inputPath, time.Now().Format("updated 15:04:05"))
	}
	return r.Standings(standings)
}

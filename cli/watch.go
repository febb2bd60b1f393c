package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/romdo/go-debounce"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/compozy/enumgen/engine/codegen"
	"github.com/compozy/enumgen/pkg/config"
	"github.com/compozy/enumgen/pkg/logger"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate enum source files whenever a manifest changes",
		RunE:  handleWatchCmd,
	}
	addGenerateFlags(cmd)
	cmd.Flags().Duration("debounce", 0, "Quiet period before regenerating (env: ENUMGEN_WATCH_DEBOUNCE)")
	cmd.Flags().Duration("max-wait", 0, "Upper bound on regeneration delay (env: ENUMGEN_WATCH_MAX_WAIT)")
	return cmd
}

func handleWatchCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd, cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, cfg.Runtime.LogSource); err != nil {
		return err
	}
	return runWatch(ctx, cfg)
}

func runWatch(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)
	fs := afero.NewOsFs()
	generator := codegen.NewGenerator(&codegen.Options{Fs: fs, Header: cfg.Generate.Header})

	regenerate := func() {
		manifests, err := loadManifests(fs, cfg.Generate.Inputs)
		if err != nil {
			log.Error("Manifest load failed", "error", err)
			return
		}
		if err := generator.Generate(ctx, manifests, cfg.Generate.Output); err != nil {
			log.Error("Generation failed", "error", err)
		}
	}

	// Generate once up front so the watch loop starts from a clean state.
	regenerate()

	watcher, err := setupWatcher(ctx, fs, cfg.Generate.Inputs)
	if err != nil {
		return err
	}
	defer watcher.Close()

	debounced, cancel := debounce.NewWithMaxWait(cfg.Watch.Debounce, cfg.Watch.MaxWait, regenerate)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if isManifestPath(event.Name) {
					log.Debug("Manifest changed", "file", event.Name)
					debounced()
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", "error", watchErr)
		}
	}
}

// setupWatcher watches the directories containing the configured manifests.
// Watching directories instead of files keeps editors that replace files on
// save (rename-over-write) from silently detaching the watch.
func setupWatcher(ctx context.Context, fs afero.Fs, patterns []string) (*fsnotify.Watcher, error) {
	log := logger.FromContext(ctx)
	paths, err := resolveManifestPaths(fs, patterns)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Close watcher when context is canceled to prevent goroutine leaks
	go func() {
		<-ctx.Done()
		_ = watcher.Close()
	}()
	dirs := make(map[string]bool)
	for _, path := range paths {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	log.Info("Watching for manifest changes", "files", len(paths), "directories", len(dirs))
	return watcher, nil
}

func isManifestPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

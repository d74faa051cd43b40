package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/i18nlint/pkg/lint"
	_ "github.com/leapstack-labs/i18nlint/pkg/lint/rules" // register rules
)

// debounceWindow collapses editor save bursts into a single re-validation.
const debounceWindow = 150 * time.Millisecond

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	TranslationDirs []string
	Disable         []string
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate translation files on change",
		Long: `Watch configured translation directories and re-validate JSON files as
they are saved. Findings are printed per file; the command itself keeps
running until interrupted and always exits zero on Ctrl+C.`,
		Example: `  # Watch the configured translation directories
  i18nlint watch

  # Watch an explicit directory
  i18nlint watch --translation-dirs public/locales`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.TranslationDirs, "translation-dirs", nil, "Directories containing translation files")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	dirs := opts.TranslationDirs
	if len(dirs) == 0 {
		dirs = cfg.TranslationDirs
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no translation directories configured; set translation_dirs or pass --translation-dirs")
	}

	lintCfg := buildLintConfig(cfg, &CheckOptions{Disable: opts.Disable})
	analyzer := lint.NewAnalyzer(lintCfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := watchDirRecursive(watcher, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r.Printf("Watching for changes in: %s\n", strings.Join(dirs, ", "))
	r.Println("Press Ctrl+C to stop")

	var debounce *time.Timer
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			r.Println("")
			r.Println("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New subdirectories need an explicit watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchDirRecursive(watcher, event.Name)
					continue
				}
			}

			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}

			// A timer that already fired processed the previous batch.
			if debounce != nil && !debounce.Stop() {
				clear(pending)
			}
			pending[event.Name] = struct{}{}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			debounce = time.AfterFunc(debounceWindow, func() {
				revalidate(ctx, analyzer, r, paths)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory tree to the watcher, skipping hidden
// directories.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if name := info.Name(); len(name) > 1 && name[0] == '.' {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// revalidate checks the changed files and prints their findings. Watch mode
// reports but never fails.
func revalidate(ctx context.Context, analyzer *lint.Analyzer, r renderer, paths []string) {
	if ctx.Err() != nil {
		return
	}
	for _, path := range paths {
		result := analyzer.AnalyzeFile(path)
		if result.OK() {
			r.Success(path)
			continue
		}
		r.Error(path)
		for _, d := range result.Diagnostics {
			r.Printf("  - %s: %q - %s\n", d.Kind, d.Key, d.Message)
		}
	}
}

// renderer is the subset of the output renderer watch mode needs.
type renderer interface {
	Printf(format string, args ...any)
	Success(msg string)
	Error(msg string)
}

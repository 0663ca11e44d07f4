package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LegacyCodeHQ/solresolve/nodelookup"
	"github.com/LegacyCodeHQ/solresolve/project"
	"github.com/LegacyCodeHQ/solresolve/resolver"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"

	"github.com/fsnotify/fsnotify"
)

// outputSink is the subset of *cobra.Command rebuild needs for output; kept
// as an interface so the fsnotify-driven path (which has no command in
// hand) can pass nil.
type outputSink interface {
	OutOrStdout() io.Writer
	ErrOrStderr() io.Writer
}

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git": true,
}

func watchAndRebuild(ctx context.Context, repoPath string, opts *watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, repoPath); err != nil {
		return fmt.Errorf("watch: failed to watch directories: %w", err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				rebuild(nil, repoPath, opts)
			})

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: watcher error: %v\n", watchErr)
		}
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".sol" || filepath.Base(event.Name) == "package.json"
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path)
	}
}

// rebuild re-resolves repoPath's entry files and prints the resulting
// remapping table. cmd may be nil (the debounced fsnotify path has no
// *cobra.Command in hand), in which case output goes to os.Stdout/os.Stderr
// directly.
func rebuild(cmd outputSink, repoPath string, opts *watchOptions) {
	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if cmd != nil {
		stdout, stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
	}

	entries, err := project.DiscoverEntryFiles(repoPath, project.SplitExts(opts.extensions))
	if err != nil {
		fmt.Fprintf(stderr, "watch: rebuild error: %v\n", err)
		return
	}

	fs := sourcefs.New()
	lookup := nodelookup.New(fs.Exists)

	res, err := resolver.Create(repoPath, opts.remappings, "", fs, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "watch: rebuild error: %v\n", err)
		return
	}

	if _, err := project.ResolveEntries(res, entries); err != nil {
		fmt.Fprintf(stderr, "watch: rebuild error: %v\n", err)
		return
	}

	for _, t := range res.GetRemappings() {
		fmt.Fprintf(stdout, "%s:%s=%s\n", t.Context, t.Prefix, t.Target)
	}

	cycles, err := res.Graph().Cycles()
	if err != nil {
		fmt.Fprintf(stderr, "watch: rebuild error: %v\n", err)
		return
	}
	if len(cycles) > 0 {
		fmt.Fprintln(stdout, "Import cycles:")
		for _, cycle := range cycles {
			fmt.Fprintf(stdout, "  %s\n", strings.Join(cycle, " -> "))
		}
	}

	fmt.Fprintln(stdout, "---")
}

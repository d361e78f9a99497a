package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/syssam/schemaviz"
	"github.com/syssam/schemaviz/compiler/load"
)

func newGenerateCmd() *cobra.Command {
	var (
		output string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "generate <schema.yaml>",
		Short: "Generate a Mermaid flowchart from a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			path := args[0]
			if err := generate(path, output); err != nil {
				if !watch {
					return err
				}
				// In watch mode a broken schema is not fatal; the next
				// save may fix it.
				log.Error().Err(err).Msg("generate failed")
			}
			if !watch {
				return nil
			}
			return watchLoop(cmd.Context(), log, path, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the schema document changes")
	return cmd
}

// generate compiles one schema document to the output target.
func generate(path, output string) error {
	s, err := load.ParseFile(path)
	if err != nil {
		return err
	}
	text, err := schemaviz.Compile(s)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = fmt.Fprintln(os.Stdout, text)
		return err
	}
	return os.WriteFile(output, []byte(text+"\n"), 0o644)
}

// watchLoop regenerates the diagram whenever the schema document is written.
// The watch is on the parent directory because editors commonly replace the
// file on save, which drops a watch set on the file itself.
func watchLoop(ctx context.Context, log zerolog.Logger, path, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)
	log.Info().Str("path", target).Msg("watching schema document")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("watch stopped")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if err := generate(path, output); err != nil {
				log.Error().Err(err).Msg("generate failed")
				continue
			}
			log.Info().Str("path", target).Msg("diagram regenerated")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}

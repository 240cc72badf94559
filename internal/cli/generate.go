package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hchawla/pydocgen/internal/analyze"
	"github.com/hchawla/pydocgen/internal/config"
	"github.com/hchawla/pydocgen/internal/docstring"
	"github.com/hchawla/pydocgen/internal/pyast"
	"github.com/hchawla/pydocgen/internal/watcher"
)

func newGenerateCmd() *cobra.Command {
	var (
		rewrite   bool
		moduleDoc bool
		write     bool
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Insert missing (or rewrite all) docstrings in Python files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := resolveSettings()
			if cmd.Flags().Changed("rewrite") {
				settings.Rewrite = rewrite
			}
			if cmd.Flags().Changed("module-doc") {
				settings.ModuleDoc = moduleDoc
			}

			style, err := docstring.ParseStyle(settings.Style)
			if err != nil {
				return err
			}
			mode := docstring.ModeMissing
			if settings.Rewrite {
				mode = docstring.ModeRewrite
			}

			for _, path := range args {
				if err := generateFile(cmd, path, style, mode, settings.ModuleDoc, write); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			if watch {
				if !write {
					return fmt.Errorf("--watch requires --write")
				}
				return watchAndRegenerate(cmd, args, style, mode, settings.ModuleDoc)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rewrite, "rewrite", false, "replace existing docstrings instead of filling gaps")
	cmd.Flags().BoolVar(&moduleDoc, "module-doc", config.DefaultSettings().ModuleDoc, "insert a module docstring when missing")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to the file instead of stdout")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and regenerate on file changes")

	return cmd
}

// generateFile runs the parse/catalog/splice pipeline for one file.
func generateFile(cmd *cobra.Command, path string, style docstring.Style, mode docstring.Mode, moduleDoc, write bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, err := generateSource(string(content), style, mode, moduleDoc)
	if err != nil {
		return err
	}

	if write {
		if out != string(content) {
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("updated"), path)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// generateSource is the library pipeline over one source text.
func generateSource(source string, style docstring.Style, mode docstring.Mode, moduleDoc bool) (string, error) {
	tree, err := pyast.Parse([]byte(source))
	if err != nil {
		return "", err
	}
	pyast.AttachParents(tree)

	cat, err := analyze.MapNodes(tree)
	if err != nil {
		return "", err
	}

	out, err := docstring.Insert(source, cat, style, mode)
	if err != nil {
		return "", err
	}
	if moduleDoc {
		out, err = docstring.AddModuleDocstring(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// watchAndRegenerate re-runs generation for each file as it changes,
// until interrupted.
func watchAndRegenerate(cmd *cobra.Command, files []string, style docstring.Style, mode docstring.Mode, moduleDoc bool) error {
	w, err := watcher.New(files)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	events, err := w.Start(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %d file(s); Ctrl-C to stop\n", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if !ok {
				return nil
			}
			if err := generateFile(cmd, path, style, mode, moduleDoc, true); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", failStyle.Render("error"), path, err)
			}
		}
	}
}

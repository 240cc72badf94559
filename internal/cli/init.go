package cli

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/hchawla/pydocgen/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a [tool.docgen] stub into pyproject.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := os.ReadFile(config.PyprojectFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("read %s: %w", config.PyprojectFile, err)
			}
			if len(config.LoadPyproject()) > 0 {
				return fmt.Errorf("%s already has a [tool.docgen] table", config.PyprojectFile)
			}

			stub, err := docgenStub()
			if err != nil {
				return err
			}

			content := string(existing)
			if content != "" && !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			if content != "" {
				content += "\n"
			}
			content += stub

			if err := os.WriteFile(config.PyprojectFile, []byte(content), 0644); err != nil {
				return fmt.Errorf("write %s: %w", config.PyprojectFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added [tool.docgen] to %s\n", config.PyprojectFile)
			return nil
		},
	}
}

// docgenStub renders the default settings as a [tool.docgen] table.
func docgenStub() (string, error) {
	defaults := config.DefaultSettings()
	doc := map[string]any{
		"tool": map[string]any{
			"docgen": map[string]any{
				"style":        defaults.Style,
				"rewrite":      defaults.Rewrite,
				"module_doc":   defaults.ModuleDoc,
				"coverage_min": defaults.CoverageMin,
			},
		},
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render stub: %w", err)
	}
	return string(data), nil
}

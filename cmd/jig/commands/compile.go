package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/jig/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a file and print the executable output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, content, path, err := c.requestFor(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := c.components.Transformer.ProcessAsync(cmd.Context(), content, path, opts)
			if err != nil {
				return err
			}

			cmd.Print(result.Code)

			if withMap, _ := cmd.Flags().GetBool("source-map"); withMap && result.SourceMap != "" {
				cmd.Println()
				cmd.Print(result.SourceMap)
			}
			return nil
		},
	}
	cmd.Flags().Bool("source-map", false, "Also print the source map")
	return cmd
}

// requestFor loads the project configuration and reads the target file.
func (c *CLI) requestFor(cmd *cobra.Command, file string) (app.Options, []byte, string, error) {
	root, _ := cmd.Flags().GetString("root")
	esm, _ := cmd.Flags().GetBool("esm")

	cfg, err := c.components.ConfigLoader.Load(root)
	if err != nil {
		return app.Options{}, nil, "", err
	}

	path, err := filepath.Abs(file)
	if err != nil {
		return app.Options{}, nil, "", zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", file)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return app.Options{}, nil, "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}

	return app.Options{Config: cfg, SupportsESM: esm}, content, path, nil
}

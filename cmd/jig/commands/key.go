package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key <file>",
		Short: "Print the cache key for a file under the current configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, content, path, err := c.requestFor(cmd, args[0])
			if err != nil {
				return err
			}
			opts.Instrument, _ = cmd.Flags().GetBool("instrument")

			key, err := c.components.Transformer.CacheKey(content, path, opts)
			if err != nil {
				return err
			}

			cmd.Println(key)
			return nil
		},
	}
	cmd.Flags().Bool("instrument", false, "Include coverage instrumentation in the key")
	return cmd
}

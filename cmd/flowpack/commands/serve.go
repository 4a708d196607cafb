package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/flowpack/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer module rewrite requests from a build host over stdin/stdout",
		Long: "Reads one JSON request per line ({\"id\":1,\"module\":\"/abs/path\"}) and writes one\n" +
			"JSON response per line. Responses carry either \"source\" or \"fallthrough\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.app.Serve(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), app.ServeOptions{
				Watch:       c.v.GetBool("watch"),
				Concurrency: c.v.GetInt("concurrency"),
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Reload the session when the descriptor or installed packages change")
	cmd.Flags().Int("concurrency", 0, "Maximum requests handled at once (default: number of CPUs)")
	c.bindFlags(cmd.Flags().Lookup("watch"), cmd.Flags().Lookup("concurrency"))
	return cmd
}

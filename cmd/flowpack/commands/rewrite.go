package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/flowpack/internal/core/domain"
)

func (c *CLI) newRewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite <id>",
		Short: "Print the substitute source for a module load",
		Long: "Prints the source that replaces the module, or nothing when the module is loaded\n" +
			"normally. Relative ids are taken relative to the dependency root.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrMissingModuleID
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			id := args[0]
			if !filepath.IsAbs(id) {
				id = filepath.Join(cfg.DependencyRoot, id)
			}

			session := c.app.OpenSession(cmd.Context(), cfg)
			source, ok := session.Interceptor.TryRewrite(id)
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), source)
			return nil
		},
	}
}

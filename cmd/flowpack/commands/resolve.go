package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/ui/output"
	"go.trai.ch/flowpack/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <module>",
		Short:   "Print the exports the shared bundle provides for a module",
		Example: "  flowpack resolve @vaadin/button\n  flowpack resolve lit/decorators.js",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrMissingModuleID
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			session := c.app.OpenSession(cmd.Context(), cfg)
			resolution, ok := session.Resolver.Resolve(args[0])
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrModuleNotExposed, "cannot resolve exports"), "module", args[0])
			}

			errOut := output.New(cmd.ErrOrStderr())
			for _, w := range resolution.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", output.Styled(errOut, style.Warning, string(style.Yellow)), w)
			}
			for _, name := range resolution.Exports {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

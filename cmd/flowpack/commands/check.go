package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/flowpack/internal/ui/output"
	"go.trai.ch/flowpack/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether installed dependencies can be served from the shared bundle",
		Long: "Loads the bundle descriptor and compares the versions it was built against with the\n" +
			"installed packages. A disabled bundle is not an error; the build falls back to the\n" +
			"installed modules.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			session := c.app.OpenSession(cmd.Context(), cfg)
			decision := session.Decision

			out := output.New(cmd.OutOrStdout())
			w := cmd.OutOrStdout()
			if decision.Enabled {
				_, _ = fmt.Fprintf(w, "%s shared bundle enabled: %d packages\n",
					output.Styled(out, style.Check, string(style.Green)),
					len(session.Descriptor.Packages))
				return nil
			}

			_, _ = fmt.Fprintf(w, "%s shared bundle disabled: %s\n",
				output.Styled(out, style.Cross, string(style.Red)),
				decision.Reason)
			for _, m := range decision.Mismatches {
				_, _ = fmt.Fprintf(w, "  %s %s\n", output.Styled(out, style.Arrow, string(style.Yellow)), m)
			}
			return nil
		},
	}
}

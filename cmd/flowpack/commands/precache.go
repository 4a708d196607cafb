package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPrecacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precache",
		Short: "Inject the precache manifest into the service worker",
		Long: "Hashes the finalized build output and replaces the injection point in the service\n" +
			"worker with the list of files to precache. Run it after the build has finished.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			_, err = c.app.Precache(cmd.Context(), cfg)
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Build output directory, overriding flowpack.yaml")
	cmd.Flags().String("sw", "", "Service worker script, relative to the output directory")
	c.bindFlags(cmd.Flags().Lookup("out"), cmd.Flags().Lookup("sw"))
	return cmd
}

package commands

import "github.com/spf13/pflag"

// bindFlags lets FLOWPACK_<NAME> environment variables supply flags the user
// did not set. Dashes in flag names become underscores.
func (c *CLI) bindFlags(flags ...*pflag.Flag) {
	for _, f := range flags {
		_ = c.v.BindPFlag(f.Name, f)
		_ = c.v.BindEnv(f.Name)
	}
}

// Package commands implements the CLI commands for flowpack.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/flowpack/internal/app"
	"go.trai.ch/flowpack/internal/build"
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// envPrefix is the prefix of environment variables that override flags.
const envPrefix = "FLOWPACK"

// CLI represents the command line interface for flowpack.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	v       *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	LoadConfig(cwd string) (*domain.Config, error)
	OpenSession(ctx context.Context, cfg *domain.Config) *app.Session
	Precache(ctx context.Context, cfg *domain.Config) (app.PrecacheResult, error)
	Serve(ctx context.Context, cfg *domain.Config, in io.Reader, out io.Writer, opts app.ServeOptions) error
	ConfigureLogging(verbose, jsonOutput bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &CLI{
		app: a,
		v:   v,
	}

	rootCmd := &cobra.Command{
		Use:           "flowpack",
		Short:         "Serve installed dependencies from a prebuilt shared bundle",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.ConfigureLogging(c.v.GetBool("verbose"), c.v.GetBool("json"))
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.Bool("verbose", false, "Show debug output")
	flags.Bool("json", false, "Write logs as JSON")
	flags.StringP("dir", "C", "", "Project directory (default: current directory)")
	flags.String("descriptor", "", "Bundle descriptor file, overriding flowpack.yaml")
	c.bindFlags(flags.Lookup("verbose"), flags.Lookup("json"), flags.Lookup("dir"), flags.Lookup("descriptor"))

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newRewriteCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newPrecacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream read by serve. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// loadConfig resolves flowpack.yaml for the project directory and applies
// flag and environment overrides on top.
func (c *CLI) loadConfig() (*domain.Config, error) {
	dir, err := absPath(c.v.GetString("dir"))
	if err != nil {
		return nil, err
	}

	cfg, err := c.app.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	if descriptor := c.v.GetString("descriptor"); descriptor != "" {
		if cfg.DescriptorPath, err = absPath(descriptor); err != nil {
			return nil, err
		}
	}
	if out := c.v.GetString("out"); out != "" {
		if cfg.Precache.OutputDir, err = absPath(out); err != nil {
			return nil, err
		}
	}
	if sw := c.v.GetString("sw"); sw != "" {
		cfg.Precache.ServiceWorker = filepath.ToSlash(sw)
	}
	return cfg, nil
}

func absPath(p string) (string, error) {
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", p)
	}
	return abs, nil
}

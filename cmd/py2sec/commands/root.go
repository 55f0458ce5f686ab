// Package commands implements the CLI commands for py2sec.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/py2sec/internal/app"
	"go.trai.ch/py2sec/internal/build"
	"go.trai.ch/py2sec/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Init(workDir string, force bool) error
	Clean(workDir string, all bool) error
	LastReport(workDir string) (*domain.BuildReport, error)
}

// LogConfigurer switches the log output format.
type LogConfigurer interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for py2sec.
type CLI struct {
	app     Application
	logs    LogConfigurer
	rootCmd *cobra.Command
}

// targetFlags are the flags that select what is built.
var targetFlags = []string{"directory", "file", "config"}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "py2sec",
		Short: "Compile Python sources into native extensions",
		Long: "py2sec compiles every Python source of a project (or a single file) into a native\n" +
			"extension through Cython and mirrors the project layout under result/.",
		Example: "  py2sec -d example -m classical -e setup.py,exclude_dir/\n" +
			"  py2sec -f tool.py -p 3",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.configureLogs,
		RunE:              c.runBuild,
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

	flags := rootCmd.Flags()
	flags.StringP("directory", "d", "", "Project directory to compile")
	flags.StringP("file", "f", "", "Single file to compile")
	flags.StringP("python", "p", "", "Interpreter version suffix, e.g. 3 runs python3")
	flags.String("interpreter", domain.DefaultInterpreter, "Interpreter base name")
	flags.StringP("mode", "m", string(domain.DefaultMode), "Result mode: minimal, classical or inplace")
	flags.StringArrayP("exclude", "e", nil, "Comma separated files or directories (trailing /) to leave out")
	flags.IntP("n_jobs", "x", 1, "Parallel jobs passed to the compiler")
	flags.BoolP("quiet", "q", false, "Write compiler output to log.txt")
	flags.BoolP("release", "r", false, "Remove intermediate files after a successful build")
	flags.StringP("template", "t", domain.TemplateFileName, "Build script template")
	flags.StringArray("ext", nil, "Source extension to compile (repeatable)")
	flags.Bool("tui", false, "Show an interactive stage dashboard (implies --quiet)")
	flags.StringP("config", "c", "", "Project configuration file (default <workdir>/"+domain.ConfigFileName+")")

	rootCmd.PersistentFlags().StringP("workdir", "C", ".", "Directory the build runs in")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newReportCmd())

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

// SetLogConfigurer lets --json switch the log format.
func (c *CLI) SetLogConfigurer(l LogConfigurer) {
	c.logs = l
}

func (c *CLI) configureLogs(cmd *cobra.Command, _ []string) error {
	if c.logs == nil {
		return nil
	}
	jsonMode, _ := cmd.Flags().GetBool("json")
	c.logs.SetJSON(jsonMode)
	return nil
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	opts := runOptions(cmd)
	err := c.app.Run(cmd.Context(), opts)
	if errors.Is(err, domain.ErrNoTarget) && !anyChanged(cmd, targetFlags...) {
		// Without a target or a project file there is nothing to do.
		_ = cmd.Help()
		return nil
	}
	return err
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()
	opts := app.RunOptions{}
	opts.WorkDir, _ = flags.GetString("workdir")
	opts.ConfigPath, _ = flags.GetString("config")

	opts.Directory = changedString(cmd, "directory")
	opts.File = changedString(cmd, "file")
	opts.Python = changedString(cmd, "python")
	opts.Interpreter = changedString(cmd, "interpreter")
	opts.Mode = changedString(cmd, "mode")
	opts.Template = changedString(cmd, "template")
	opts.Quiet = changedBool(cmd, "quiet")
	opts.Release = changedBool(cmd, "release")

	if flags.Changed("n_jobs") {
		jobs, _ := flags.GetInt("n_jobs")
		opts.Jobs = &jobs
	}
	opts.Exclude, _ = flags.GetStringArray("exclude")
	opts.Extensions, _ = flags.GetStringArray("ext")
	opts.Interactive, _ = flags.GetBool("tui")
	return opts
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func workDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("workdir")
	return dir
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/accordion/internal/config"
	"github.com/idilsaglam/accordion/internal/logging"
	"github.com/idilsaglam/accordion/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg *config.Config
	log *logging.Logger
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	return execute(root, a, args, stdout, stderr)
}

// execute runs root and closes the log whether or not the command failed;
// cobra skips post-run hooks after an error.
func execute(root *cobra.Command, a *app, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.log.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}
	ui.Ffail(stderr, err.Error())
	var u usageError
	if errors.As(err, &u) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return 2
	}
	return 1
}

func newRootCmd() (*cobra.Command, *app) {
	viper.Reset()
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:   "accordion",
		Short: "Collapsible sections in the terminal, one open at a time",
		Long: `accordion shows a list of titled sections. Selecting a title expands its
body and collapses whichever section was open before.

Sections are read from a JSON file (default ./accordion.json); without one a
small sample set is shown.`,
		Example: `  accordion
  accordion view --animate --open item2
  accordion add faq1 "What is this?" "A terminal accordion."
  accordion ls --open faq1
  accordion rm faq1`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringP("config", "c", "", "config file (default is "+config.ConfigFile()+")")
	root.PersistentFlags().StringP("file", "f", "", "items file (default ./accordion.json)")
	root.PersistentFlags().String("theme", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("data.file", root.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("ui.theme", root.PersistentFlags().Lookup("theme"))

	view := newViewCmd(a)
	root.RunE = view.RunE
	root.Flags().AddFlagSet(view.Flags())

	root.AddCommand(view, newListCmd(a), newAddCmd(a), newRemoveCmd(a), newConfigCmd(a))
	return root, a
}

// init loads configuration the same way for every subcommand.
func (a *app) init() error {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("ACCORDION")
	// e.g. ACCORDION_UI_THEME for ui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.UI.Theme)

	if cfg.Logging.Enabled {
		l, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return err
		}
		a.log = l
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

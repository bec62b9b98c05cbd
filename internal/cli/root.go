// Package cli wires the kswitch commands: the launcher (default), query,
// list, current and use.
package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/renato0307/kswitch/internal/config"
	"github.com/renato0307/kswitch/internal/keyboard"
	"github.com/renato0307/kswitch/internal/kubeconfig"
	"github.com/renato0307/kswitch/internal/kubectl"
	"github.com/renato0307/kswitch/internal/launcher"
	"github.com/renato0307/kswitch/internal/logging"
	"github.com/renato0307/kswitch/internal/messages"
	"github.com/renato0307/kswitch/internal/query"
	"github.com/renato0307/kswitch/internal/ui"
)

// options holds the persistent flags
type options struct {
	configPath string
	kubectl    string
	kubeconfig string
	theme      string
	timeout    time.Duration
	logFile    string
	logLevel   string
}

// app is the dependency graph shared by all commands
type app struct {
	cfg        *config.Config
	client     *kubectl.Client
	details    *kubeconfig.Reader
	engine     *query.Engine
	dispatcher *query.Dispatcher
}

// isTerminal reports whether the launcher can take over the terminal
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

// runLauncher starts the interactive launcher
var runLauncher = launcher.Run

// NewRootCommand builds the kswitch command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "kswitch [term]",
		Short: "Inspect and switch kubectl contexts",
		Long: `kswitch lists the contexts kubectl knows about, highlights the active one
and switches context from a quick-launcher style search.

Without a subcommand it opens the launcher when attached to a terminal and
prints the query results otherwise.`,
		Example: `  # Open the launcher
  kswitch

  # Open the launcher pre-filtered
  kswitch prod

  # Scriptable usage
  kswitch list
  kswitch query eu -o name
  kswitch use prod-eu`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			if !isTerminal() {
				formatter, err := NewFormatter(cmd.OutOrStdout(), FormatTable)
				if err != nil {
					return err
				}
				return formatter.PrintItems(a.engine.Query(cmd.Context(), term))
			}

			err := runLauncher(launcher.Deps{
				Querier:    a.engine,
				Dispatcher: a.dispatcher,
				Theme:      ui.GetTheme(a.cfg.Theme),
				Keys:       keyboard.Default(),
			}, term)
			if err != nil {
				return messages.WrapError(err, "launcher failed")
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: $"+config.EnvConfigPath+" or <user config dir>/kswitch/config.yaml)")
	flags.StringVar(&opts.kubectl, "kubectl", "", "Path to the kubectl executable (skips lookup)")
	flags.StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to kubeconfig file passed to kubectl")
	flags.StringVar(&opts.theme, "theme", "", "Launcher theme ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Timeout for each kubectl call (0 = no timeout)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newQueryCommand(a),
		newListCommand(a),
		newCurrentCommand(a),
		newUseCommand(a),
	)

	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads the config, applies flag overrides and builds the app
func (a *app) setup(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		return messages.WrapError(err, "failed to initialize logging")
	}

	path := cfg.Kubectl
	if path == "" {
		path = kubectl.NewResolver(cfg.KubectlCandidates...).Resolve()
	}
	logging.Debug("using kubectl", "path", path, "kubeconfig", cfg.Kubeconfig, "timeout", cfg.KubectlTimeout())

	executor := kubectl.NewExecutor(path, kubectl.ExecutorOptions{
		Kubeconfig: cfg.Kubeconfig,
		Timeout:    cfg.KubectlTimeout(),
	})

	a.cfg = cfg
	a.client = kubectl.NewClient(executor)
	a.details = kubeconfig.NewReader(cfg.Kubeconfig)
	a.engine = query.NewEngine(a.client, a.details)
	a.dispatcher = query.NewDispatcher(a.client)
	return nil
}

// apply overrides file values with the flags that were set
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if o.kubectl != "" {
		cfg.Kubectl = o.kubectl
	}
	if o.kubeconfig != "" {
		cfg.Kubeconfig = o.kubeconfig
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if flags.Changed("timeout") {
		cfg.Timeout.Duration = o.timeout
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/renato0307/kswitch/internal/kubeconfig"
	"github.com/renato0307/kswitch/internal/logging"
	"github.com/renato0307/kswitch/internal/query"
)

func newQueryCommand(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "query [term]",
		Short: "Print launcher results for a search term",
		Example: `  kswitch query
  kswitch query prod -o name
  kswitch query eu -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := NewFormatter(cmd.OutOrStdout(), outputFormat)
			if err != nil {
				return err
			}

			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			items := a.engine.Query(cmd.Context(), term)
			if err := formatter.PrintItems(items); err != nil {
				return err
			}

			if len(items) == 0 && outputFormat != FormatJSON && outputFormat != FormatYAML {
				printSuggestions(cmd, a.engine.Suggest(cmd.Context(), term))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", FormatTable, "Output format (table|name|json|yaml)")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List kubectl contexts and mark the active one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := NewFormatter(cmd.OutOrStdout(), outputFormat)
			if err != nil {
				return err
			}

			contexts, err := a.client.ListContexts(cmd.Context())
			if err != nil {
				return err
			}

			// kubectl lists contexts even without an active one
			current, err := a.client.CurrentContext(cmd.Context())
			if err != nil {
				logging.Warn("no current context", "error", err)
			}

			details, err := a.details.Load()
			if err != nil {
				logging.Warn("kubeconfig details unavailable", "error", err)
			}

			rows := make([]ContextRow, 0, len(contexts))
			for _, name := range contexts {
				info := details[name]
				rows = append(rows, ContextRow{
					Name:      name,
					Current:   current != "" && name == current,
					Cluster:   info.Cluster,
					Namespace: info.Namespace,
				})
			}
			return formatter.PrintContexts(rows)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", FormatTable, "Output format (table|name|json|yaml)")
	return cmd
}

func newCurrentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active kubectl context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.client.CurrentContext(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}
}

func newUseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <context>",
		Short: "Switch the active kubectl context",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeContexts(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			item := query.Item{
				Title:   name,
				Context: name,
				Action:  query.SwitchAction(name),
			}

			msg, err := a.dispatcher.Dispatch(cmd.Context(), item)
			if err != nil {
				printSuggestions(cmd, a.engine.Suggest(cmd.Context(), name))
				return err
			}

			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// completeContexts reads context names straight from kubeconfig so shell
// completion never waits on a kubectl process
func completeContexts(cmd *cobra.Command, prefix string) []string {
	path, _ := cmd.Flags().GetString("kubeconfig")
	contexts, err := kubeconfig.NewReader(path).Contexts()
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(contexts))
	for _, c := range contexts {
		if strings.HasPrefix(c.Name, prefix) {
			names = append(names, c.Name)
		}
	}
	return names
}

func printSuggestions(cmd *cobra.Command, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "Did you mean: %s?\n", strings.Join(suggestions, ", "))
}

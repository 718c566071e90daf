package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newCaseCmd(a *app) *cobra.Command {
	var (
		policy string
		all    bool
	)

	c := &cobra.Command{
		Use:   "case [text...]",
		Short: "Rewrite the case of text line by line",
		Long: `Rewrite the case of text line by line.

Policies:
  alternating_even  upper case at even positions of each word
  alternating_odd   upper case at odd positions of each word
  sentence          first rune of each line upper, the rest lower
  capitalize        first rune of each word upper (aliases: title, camel)

Every line of the output ends with the configured line separator.`,
		Example: `  textx case --policy alternating_even hello world
  echo "hello world" | textx case -p title
  textx case --all hello world`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			if all {
				for _, p := range stringx.CasePolicies() {
					out, err := a.settings.Formatter.Apply(text, p)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(p.String()))
					fmt.Fprint(cmd.OutOrStdout(), out)
				}
				return nil
			}

			p := a.settings.CasePolicy
			if cmd.Flags().Changed("policy") {
				if p, err = stringx.ParseCasePolicy(policy); err != nil {
					return err
				}
			}
			a.logger.Debug("applying case policy", mdwlog.String("policy", p.String()))

			out, err := a.settings.Formatter.Apply(text, p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	c.Flags().StringVarP(&policy, "policy", "p", "", "case policy (default from case.policy)")
	c.Flags().BoolVar(&all, "all", false, "render the text with every policy")
	return c
}

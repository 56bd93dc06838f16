package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/browseragentprotocol/bap-go/internal/selector"
)

// newParseCmd creates the `parse` command: selector tokens in, canonical
// selectors out. Useful for checking how a token will be interpreted
// before putting it in a step sequence.
func newParseCmd() *cobra.Command {
	var display bool

	parseCmd := &cobra.Command{
		Use:   "parse TOKEN...",
		Short: "Parse selector tokens and print their canonical form",
		Example: `  bap parse 'role:button:"Sign in"'
  bap parse e12 @login-button '#main .cta' 'coords:100,200'
  bap parse --display 'text:"Forgot password?"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, token := range args {
				sel, err := selector.Parse(token)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", token, err)
				}
				if display {
					fmt.Fprintln(out, selector.Format(sel))
					continue
				}
				encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(sel)
				if err != nil {
					return fmt.Errorf("encoding %q: %w", token, err)
				}
				fmt.Fprintln(out, string(encoded))
			}
			return nil
		},
	}

	parseCmd.Flags().BoolVar(&display, "display", false, "print the display form instead of JSON")
	return parseCmd
}

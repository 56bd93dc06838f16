package cmd

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/browseragentprotocol/bap-go/api/schemas"
	"github.com/browseragentprotocol/bap-go/internal/client"
	"github.com/browseragentprotocol/bap-go/internal/observability"
)

// newInfoCmd creates the `info` command: handshake with a server and print
// its identity and capabilities.
func newInfoCmd() *cobra.Command {
	var (
		token      string
		jsonOutput bool
	)

	infoCmd := &cobra.Command{
		Use:     "info URL",
		Short:   "Get server info and capabilities",
		Example: `  bap info ws://localhost:9222 --json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverConfigFor(args[0], token), Version, observability.GetLogger())
			result, err := c.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding server info: %w", err)
				}
				fmt.Fprintln(out, string(encoded))
				return nil
			}

			fmt.Fprintln(out, "BAP Server Information")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "Protocol Version: %s\n", result.ProtocolVersion)
			fmt.Fprintf(out, "Server Name:      %s\n", result.ServerInfo.Name)
			fmt.Fprintf(out, "Server Version:   %s\n", result.ServerInfo.Version)
			printCapabilities(out, result.Capabilities)
			return nil
		},
	}

	infoCmd.Flags().StringVar(&token, "token", "", "authentication token")
	infoCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return infoCmd
}

func printCapabilities(out io.Writer, caps schemas.ServerCapabilities) {
	fmt.Fprintln(out, "\nCapabilities:")
	if len(caps.Browsers) > 0 {
		fmt.Fprintf(out, "  browsers:     %s\n", strings.Join(caps.Browsers, ", "))
	}
	if len(caps.Actions) > 0 {
		fmt.Fprintf(out, "  actions:      %s\n", strings.Join(caps.Actions, ", "))
	}
	if len(caps.Observations) > 0 {
		fmt.Fprintf(out, "  observations: %s\n", strings.Join(caps.Observations, ", "))
	}
	if len(caps.Events) > 0 {
		fmt.Fprintf(out, "  events:       %s\n", strings.Join(caps.Events, ", "))
	}
	fmt.Fprintf(out, "  streaming:    %t\n", caps.Streaming)
	fmt.Fprintf(out, "  compression:  %t\n", caps.Compression)
}

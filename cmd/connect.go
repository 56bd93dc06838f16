package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/browseragentprotocol/bap-go/internal/client"
	"github.com/browseragentprotocol/bap-go/internal/config"
	"github.com/browseragentprotocol/bap-go/internal/observability"
)

// newConnectCmd creates the `connect` command: dial a BAP server, run the
// initialize handshake, report what answered.
func newConnectCmd() *cobra.Command {
	var token string

	connectCmd := &cobra.Command{
		Use:     "connect URL",
		Short:   "Test the connection to a BAP server",
		Example: `  bap connect ws://localhost:9222`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server := serverConfigFor(args[0], token)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Connecting to %s...\n", server.URL)

			c := client.New(server, Version, observability.GetLogger())
			result, err := c.Connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("connection failed: %w", err)
			}
			defer c.Close()

			fmt.Fprintln(out, "Connected successfully!")
			fmt.Fprintf(out, "  Protocol version: %s\n", result.ProtocolVersion)
			fmt.Fprintf(out, "  Server: %s v%s\n", result.ServerInfo.Name, result.ServerInfo.Version)
			return nil
		},
	}

	connectCmd.Flags().StringVar(&token, "token", "", "authentication token")
	return connectCmd
}

// serverConfigFor overlays a positional URL and flag token onto the
// configured server settings.
func serverConfigFor(url, token string) config.ServerConfig {
	server := cfg.Server
	server.URL = url
	if token != "" {
		server.Token = token
	}
	return server
}

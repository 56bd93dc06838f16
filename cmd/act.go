package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/browseragentprotocol/bap-go/api/schemas"
	"github.com/browseragentprotocol/bap-go/internal/client"
	"github.com/browseragentprotocol/bap-go/internal/observability"
	"github.com/browseragentprotocol/bap-go/internal/steps"
)

// newActCmd creates the `act` command: composite-action tokens in, an
// agent/act batch out. Without a configured server (or with --dry-run) the
// compiled request envelope is printed instead of executed.
func newActCmd() *cobra.Command {
	var (
		dryRun           bool
		stopOnFirstError bool
	)

	actCmd := &cobra.Command{
		Use:   "act STEP...",
		Short: "Compile composite action steps and run them on the engine",
		Example: `  bap act 'goto:https://example.com/login' 'fill:label:"Email"="user@example.com"' 'fill:e5="hunter2=secret"' 'click:role:button:"Sign in"'
  bap act --dry-run 'press:Enter' snapshot`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			parsed, err := steps.ParseSteps(args)
			if err != nil {
				return err
			}
			compiled := steps.CompileAll(parsed)

			if dryRun || cfg.Server.URL == "" {
				return printActRequest(cmd, compiled, stopOnFirstError)
			}

			ctx := cmd.Context()
			c := client.New(cfg.Server, Version, logger)
			if _, err := c.Connect(ctx); err != nil {
				return err
			}
			defer c.Close()

			result, err := c.Act(ctx, compiled, stopOnFirstError)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, step := range result.Results {
				status := "ok"
				if !step.Success {
					status = "FAILED"
				}
				fmt.Fprintf(out, "step %d: %s (%dms)\n", step.Step, status, step.Duration)
				if step.Error != nil {
					fmt.Fprintf(out, "  error %d: %s\n", step.Error.Code, step.Error.Message)
				}
			}
			fmt.Fprintf(out, "%d/%d steps completed in %dms\n",
				result.Completed, result.Total, result.Duration)
			if !result.Success {
				logger.Warn("Action sequence did not complete",
					zap.Int("completed", result.Completed), zap.Int("total", result.Total))
				return fmt.Errorf("action sequence failed")
			}
			return nil
		},
	}

	actCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the compiled agent/act request instead of executing")
	actCmd.Flags().BoolVar(&stopOnFirstError, "stop-on-first-error", true, "abort the batch at the first failing step")
	return actCmd
}

func printActRequest(cmd *cobra.Command, compiled []schemas.ExecutionStep, stopOnFirstError bool) error {
	params, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(schemas.AgentActParams{
		Steps:            compiled,
		StopOnFirstError: stopOnFirstError,
	})
	if err != nil {
		return fmt.Errorf("encoding steps: %w", err)
	}
	req := schemas.NewRequest(schemas.IntID(1), schemas.MethodAgentAct, params)
	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

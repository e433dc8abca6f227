// Command adminforms inspects collection schemas and drives record entry
// from the terminal. Schemas come from a live backend (ADMINFORMS_BACKEND_URL)
// or from an OpenAPI document via --openapi.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-adminforms/pkg/backend"
	"github.com/goliatone/go-adminforms/pkg/export"
	"github.com/goliatone/go-adminforms/pkg/openapi"
	"github.com/goliatone/go-adminforms/pkg/orchestrator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	openapiPath string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "adminforms",
		Short:         "Derive, export, and fill admin forms for collection backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.openapiPath, "openapi", "", "derive schemas from an OpenAPI document instead of the backend")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFormCmd(flags))
	root.AddCommand(newFillCmd(flags))
	return root
}

func newFormCmd(flags *rootFlags) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "form <collection>",
		Short: "Print the derived form definition for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, _, err := buildPipeline(flags)
			if err != nil {
				return err
			}

			definition, err := pipeline.Definition(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			encoder, err := export.NewRegistry().Get(format)
			if err != nil {
				return err
			}
			payload, err := encoder.Encode(definition)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, payload, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "form definition written to %s\n", output)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format (json|yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func newFillCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fill <collection>",
		Short: "Interactively fill and submit a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, submittable, err := buildPipeline(flags)
			if err != nil {
				return err
			}
			collection := args[0]

			configs, err := pipeline.Fields(cmd.Context(), collection)
			if err != nil {
				return err
			}

			data, err := promptRecord(configs)
			if err != nil {
				return err
			}

			if dryRun || !submittable {
				violations, err := pipeline.Check(cmd.Context(), collection, data)
				if err != nil {
					return err
				}
				if len(violations) > 0 {
					return errors.New("record is invalid:\n  " + joinLines(violations))
				}
				return printJSON(cmd, data)
			}

			record, err := pipeline.Create(cmd.Context(), collection, data)
			if err != nil {
				var validationErr *orchestrator.ValidationError
				if errors.As(err, &validationErr) {
					return errors.New("record is invalid:\n  " + joinLines(validationErr.Violations))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created record %s\n", record.ID())
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and print the record instead of submitting")
	return cmd
}

// buildPipeline assembles the orchestrator from the configured schema
// source. The second result reports whether records can actually be
// submitted; an OpenAPI-sourced pipeline has no live backend behind it.
func buildPipeline(flags *rootFlags) (*orchestrator.Orchestrator, bool, error) {
	log := zap.NewNop()
	if flags.verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, false, err
		}
	}

	if flags.openapiPath != "" {
		raw, err := os.ReadFile(flags.openapiPath)
		if err != nil {
			return nil, false, fmt.Errorf("read openapi document: %w", err)
		}
		collections, err := openapi.Collections(context.Background(), raw)
		if err != nil {
			return nil, false, err
		}
		mem := backend.NewMemory(collections...)
		return orchestrator.New(
			orchestrator.WithBackend(mem),
			orchestrator.WithLogger(log),
		), false, nil
	}

	client, err := backend.NewFromEnv(backend.WithLogger(log))
	if err != nil {
		return nil, false, err
	}
	return orchestrator.New(
		orchestrator.WithBackend(client),
		orchestrator.WithLogger(log),
	), true, nil
}

func printJSON(cmd *cobra.Command, data map[string]any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n  "
		}
		out += line
	}
	return out
}

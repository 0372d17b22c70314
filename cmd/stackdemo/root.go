package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"interview_code/internal/script"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "stackdemo",
	Short: "Run stack and queue exercise scenarios",
	Long: `stackdemo applies a sequence of operations to a multi-stack, a queue
built from two stacks, or an animal shelter, and prints the result of every
operation. Scenarios are YAML files or one of the built-in demos.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every operation to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output transcripts in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns the command's context with a logger attached when
// --verbose is set.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if verbose {
		ctx = ctxlog.NewJSONLogger(ctx, cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return ctx
}

func runScripts(cmd *cobra.Command, scripts []*script.Script) error {
	ctx := commandContext(cmd)
	transcripts := make([]*script.Transcript, 0, len(scripts))
	for _, s := range scripts {
		tr, err := script.Run(ctx, s)
		if err != nil {
			return err
		}
		transcripts = append(transcripts, tr)
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), transcripts)
	}
	for _, tr := range transcripts {
		printTranscript(cmd.OutOrStdout(), tr)
	}
	return nil
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printTranscript(w io.Writer, tr *script.Transcript) {
	fmt.Fprintf(w, "== %s (%s)\n", tr.Name, tr.Kind)
	for _, step := range tr.Steps {
		if step.Error != "" {
			fmt.Fprintf(w, "%-24s error: %s\n", step.Op, step.Error)
			continue
		}
		fmt.Fprintf(w, "%-24s %s\n", step.Op, step.Result)
	}
	if tr.Final != "" {
		fmt.Fprintf(w, "final: %s\n", tr.Final)
	}
}

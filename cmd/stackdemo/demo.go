package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"interview_code/internal/script"
)

var variant string

var demoCmd = &cobra.Command{
	Use:   "demo [name]...",
	Short: "Run built-in scenarios, all of them if no name is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = script.BuiltinNames()
		}
		scripts := make([]*script.Script, 0, len(args))
		for _, name := range args {
			s, err := script.Builtin(name)
			if err != nil {
				return err
			}
			if variant != "" && s.Kind != "multistack" {
				s.Variant = variant
			}
			scripts = append(scripts, s)
		}
		return runScripts(cmd, scripts)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range script.BuiltinNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	demoCmd.Flags().StringVar(&variant, "variant", "", "Queue variant for queue and shelter demos: cheap-enqueue or cheap-dequeue")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(listCmd)
}

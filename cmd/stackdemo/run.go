package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interview_code/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Run scenarios from YAML files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scripts := make([]*script.Script, 0, len(args))
		for _, name := range args {
			s, err := parseFile(name)
			if err != nil {
				return err
			}
			scripts = append(scripts, s)
		}
		return runScripts(cmd, scripts)
	},
}

func parseFile(name string) (*script.Script, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := script.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}

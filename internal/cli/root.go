// Package cli implements the cobra-based CLI commands for gridpath.
//
// Each subcommand (find, render, regions) is defined in its own file within
// this package. This file defines the root command that serves as the parent
// for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// options holds the global flags shared by every subcommand.
type options struct {
	// jsonOutput switches stdout to machine-readable JSON.
	jsonOutput bool
	// verbose enables trace output on stderr.
	verbose bool
}

// Build information, injected from the main package.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action; it only provides
// help text and global flags.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on obstacle grids with A*",
		Long: `gridpath loads a grid scenario (YAML, JSON with comments, or an ASCII map)
and finds a shortest 4-connected path between two free cells with A*.

Cells are addressed as row,col starting at 0,0 in the top-left corner.`,

		// Errors are printed by Execute in text or JSON form.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewFindCommand(opts))
	rootCmd.AddCommand(NewRenderCommand(opts))
	rootCmd.AddCommand(NewRegionsCommand(opts))

	return rootCmd
}

// Execute runs the root command and exits with the mapped exit code.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd, os.Stderr)))
}

// Run executes rootCmd and reports any error on stderr, returning the exit code.
func Run(rootCmd *cobra.Command, stderr io.Writer) ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	jsonOutput, _ := rootCmd.PersistentFlags().GetBool("json")

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code != ExitNoPath {
			printError(stderr, jsonOutput, cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}
	printError(stderr, jsonOutput, err.Error(), nil)

	return ExitGeneralError
}

// printError outputs an error message as JSON or text on stderr.
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// verboseLog prints a message to the command's stderr only when verbose mode is enabled.
func verboseLog(cmd *cobra.Command, opts *options, format string, args ...interface{}) {
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] "+format+"\n", args...)
	}
}

// writeJSON encodes v with indentation on the command's stdout.
func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return WrapCLIError(ExitGeneralError, "failed to encode JSON output", err)
	}

	return nil
}

// Package main is the entrypoint for the sftptest CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neoaurion/QSsh/internal/args"
	"github.com/neoaurion/QSsh/internal/connector"
	"github.com/neoaurion/QSsh/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errInvalidArguments is returned after the collector has already printed
// the error and usage.
var errInvalidArguments = errors.New("invalid arguments")

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Flag parsing is disabled: the collector matches the literal tokens and
// cobra would otherwise claim -h for help. The usage line printed by the
// collector is the only help.
var rootCmd = &cobra.Command{
	Use:                "sftptest -h <host> -u <user> -pwd <password> | -k <private key file> [options]",
	Short:              "Collect connection parameters for the SFTP transfer test",
	Version:            fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               collectParameters,
}

func collectParameters(cmd *cobra.Command, argv []string) error {
	stderr := output.New(cmd.ErrOrStderr())
	stderr.SetColor(os.Getenv("NO_COLOR") == "")
	stderr.SetDebug(os.Getenv("SFTPTEST_DEBUG") != "")

	collector := args.New(append([]string{programName()}, argv...), args.WithOutput(stderr))
	params, ok := collector.Collect()
	if !ok {
		return errInvalidArguments
	}

	if params.SSH.AuthType == connector.AuthPassword && params.SSH.Password == "" {
		stderr.Warn("empty password given for %s", params.SSH.String())
	}
	stderr.Info("parameters accepted for %s (sftptest %s)", params.SSH.String(), cmd.Root().Version)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(params); err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	return enc.Close()
}

func programName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return os.Args[0]
}

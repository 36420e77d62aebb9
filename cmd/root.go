package cmd

import (
	"errors"
	"fmt"
	"os"

	"object-probe/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the optional .env file is looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "object-probe",
	Short: "Object existence probe for S3-compatible storage",
	Long: `object-probe checks whether an object exists in an S3-compatible bucket.
It authenticates with the standard AWS_* credentials, sends a single metadata
request and reports whether the object exists, does not exist, or could not be
determined.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process status for an outcome that was already reported
// to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}

		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing the optional .env file")
}

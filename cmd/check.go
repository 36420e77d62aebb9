package cmd

import (
	"context"
	"fmt"
	"io"

	"object-probe/core/config"
	"object-probe/core/logger"
	"object-probe/core/storage"
	"object-probe/feature/existence"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitMissingConfig is the status for absent credentials, region, bucket or key.
const exitMissingConfig = 2

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether an object exists in a bucket",
	Long: `Sends one metadata-only request for the object and reports the outcome.
Bucket and key default to PROBE_BUCKET and PROBE_KEY.

Exit status is 0 when the object exists or does not exist, 1 when the outcome
could not be determined and 2 when required configuration is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		bucket, _ := cmd.Flags().GetString("bucket")
		key, _ := cmd.Flags().GetString("key")
		ref := existence.Reference{
			Bucket: firstNonEmpty(bucket, cfg.Probe.Bucket),
			Key:    firstNonEmpty(key, cfg.Probe.Key),
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()

		code := runCheck(cmd.Context(), cfg, ref, storage.NewClient, logg, cmd.OutOrStdout())
		if code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("bucket", "", "Bucket name (default $PROBE_BUCKET)")
	checkCmd.Flags().String("key", "", "Object key (default $PROBE_KEY)")
}

// runCheck validates configuration, runs the probe and prints the outcome.
// It returns the process exit status.
func runCheck(ctx context.Context, cfg *config.Config, ref existence.Reference, newClient existence.ClientFactory, logg *zap.Logger, out io.Writer) int {
	logg, _ = logger.WithRunID(logg)

	if err := cfg.Validate(); err != nil {
		logg.Error("Configuration incomplete", zap.Error(err))
		fmt.Fprintf(out, "Error: %v.\n", err)
		return exitMissingConfig
	}

	if err := ref.Validate(); err != nil {
		logg.Error("Probe target incomplete", zap.Error(err))
		fmt.Fprintf(out, "Error: %v (use --bucket and --key).\n", err)
		return exitMissingConfig
	}

	fmt.Fprintf(out, "Checking for object '%s' in bucket '%s'...\n", ref.Key, ref.Bucket)

	checker := existence.NewChecker(cfg.Storage, cfg.AWS, newClient, logg)
	res := checker.Check(ctx, ref)

	switch res.State {
	case existence.Exists:
		fmt.Fprintf(out, "The object '%s' exists in the bucket '%s'.\n", ref.Key, ref.Bucket)
	case existence.NotExists:
		fmt.Fprintf(out, "The object '%s' does not exist in the bucket '%s'.\n", ref.Key, ref.Bucket)
	default:
		fmt.Fprintf(out, "Unable to determine object existence: %s.\n", res.Reason)
	}

	return res.ExitCode()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Command roster is the demonstration driver for the in-memory user
// directory: it ingests raw "NAME, AGE, EMAIL" lines, registers the valid
// records, and prints the directory report. All domain logic lives in the
// internal packages; this binary only supplies lines and displays results.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"roster/internal/audit"
	dirmetrics "roster/internal/directory/metrics"
	"roster/internal/directory/models"
	"roster/internal/directory/service"
	"roster/internal/directory/store"
	userstore "roster/internal/directory/store/user"
	"roster/internal/ingest"
	"roster/internal/platform/config"
	"roster/internal/platform/logger"
	"roster/internal/stats"
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "In-memory user directory",
	Long:  "roster keeps an in-memory user directory keyed by email and reports derived views over it.",
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Parse raw user lines, register the valid ones, and print the report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().Bool("seed", false, "register the built-in demo users first")
	ingestCmd.Flags().Bool("parallel", false, "parse the input concurrently")
	ingestCmd.Flags().Int("min-age", 0, "lower bound for the age-range report (requires --max-age)")
	ingestCmd.Flags().Int("max-age", 0, "upper bound for the age-range report")
	ingestCmd.Flags().Bool("desc", false, "sort the age listing descending")

	_ = viper.BindPFlag("seed", ingestCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("parallel", ingestCmd.Flags().Lookup("parallel"))
	_ = viper.BindPFlag("min_age", ingestCmd.Flags().Lookup("min-age"))
	_ = viper.BindPFlag("max_age", ingestCmd.Flags().Lookup("max-age"))
	_ = viper.BindPFlag("desc", ingestCmd.Flags().Lookup("desc"))
	viper.SetEnvPrefix("ROSTER")
	viper.AutomaticEnv()

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromEnv()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	users := userstore.NewInMemory()
	auditLog := audit.NewPublisher(audit.NewInMemoryStore())
	directory := service.New(users,
		service.WithLogger(log),
		service.WithAuditPublisher(auditLog),
		service.WithMetrics(dirmetrics.New()),
	)

	if viper.GetBool("seed") {
		for _, u := range store.DemoUsers() {
			// Rejections (Charlie is under age) are notified by the
			// service; the demo keeps going.
			_ = directory.Register(ctx, u)
		}
	}

	lines, err := readLines(args)
	if err != nil {
		return err
	}

	var parsed []models.User
	if viper.GetBool("parallel") {
		parsed, err = ingest.ParseAllParallel(ctx, lines)
		if err != nil {
			return err
		}
	} else {
		parsed = ingest.ParseAll(lines)
	}
	for _, u := range parsed {
		_ = directory.Register(ctx, u)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Batch processing results: %d of %d lines kept\n", len(parsed), len(lines))
	if err := directory.WriteAll(ctx, out); err != nil {
		return err
	}

	adults := directory.Adults(ctx)
	fmt.Fprintf(out, "\nTotal users: %d\n", directory.Count(ctx))
	fmt.Fprintf(out, "Adult users: %d\n", len(adults))
	fmt.Fprintf(out, "Average age of adults: %g\n", stats.AverageAge(adults))

	minAge, maxAge := viper.GetInt("min_age"), viper.GetInt("max_age")
	if maxAge > 0 {
		ranged := stats.FilterByAgeRange(adults, minAge, maxAge)
		fmt.Fprintf(out, "Users aged %d-%d: %d\n", minAge, maxAge, len(ranged))
	}

	fmt.Fprintln(out, "\nUsers sorted by age:")
	for _, u := range stats.SortByAge(adults, !viper.GetBool("desc")) {
		fmt.Fprintf(out, "  %s\n", u.Summary())
	}
	return nil
}

// readLines reads input lines from the file argument, or stdin when no
// argument was given.
func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/killallgit/secondlife-api/internal/services/summary"
	"github.com/spf13/cobra"
)

const verifyPrompt = "Say hello in one word"

// verifyCmd checks that configured provider keys actually work
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check configured provider credentials",
	Long: `Send a one-line test prompt to the configured summary provider and,
when --location is given, geocode it with the Google Maps key.

Example:
  secondlife-api verify
  secondlife-api verify --location 94103`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("location", "", "also geocode this location with the maps key")
	verifyCmd.Flags().Duration("timeout", 30*time.Second, "timeout per provider call")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	out := cmd.OutOrStdout()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if err := verifyGenerator(ctx, generator, timeout, out); err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("location")
	if location == "" {
		return nil
	}

	geocoder := newGeocoder(cfg, &log)
	if !geocoder.Configured() {
		return errors.New("GOOGLE_MAPS_API_KEY is not set")
	}
	gctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	center, err := geocoder.Geocode(gctx, location)
	if err != nil {
		return fmt.Errorf("geocoding %q: %w", location, err)
	}
	fmt.Fprintf(out, "geocode: %q -> %.6f, %.6f\n", location, center.Lat, center.Lng)
	return nil
}

func verifyGenerator(ctx context.Context, generator summary.Generator, timeout time.Duration, out io.Writer) error {
	if generator == nil {
		return errors.New("summary provider key is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := generator.Generate(ctx, verifyPrompt)
	if err != nil {
		return fmt.Errorf("%s: %w", generator.Name(), err)
	}
	fmt.Fprintf(out, "%s: %s\n", generator.Name(), reply)
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/killallgit/secondlife-api/api/types"
	"github.com/spf13/cobra"
)

const serviceName = "Second Life API"

// Set with -ldflags "-X github.com/killallgit/secondlife-api/cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build of the thrift store API",
	Long: `Print the build served by GET /api/version, plus the Go runtime it was built with.

Use --json for the exact payload the endpoint returns.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version")
	versionCmd.Flags().Bool("json", false, "print the /api/version payload")
}

// buildInfo is shared by the version command and the /api/version handler
func buildInfo() types.VersionResponse {
	return types.VersionResponse{
		Name:    serviceName,
		Version: Version,
		Commit:  GitCommit,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := buildInfo()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "%s %s (commit %s, built %s)\n", info.Name, info.Version, info.Commit, BuildTime)
	fmt.Fprintf(out, "runtime %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

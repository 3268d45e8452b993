package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// Repository is the GitHub slug releases are published under
const Repository = "s0up4200/goavwx"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected by main
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(testCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{"skipInit": "true"},
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goavwx %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:         "update",
	Short:       "Update goavwx to the latest release",
	Annotations: map[string]string{"skipInit": "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := semver.ParseTolerant(version)
		if err != nil {
			return fmt.Errorf("cannot update a development build (%s): %w", version, err)
		}

		ctx := commandContext(cmd)
		latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if !found {
			return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
		}

		if latest.LessOrEqual(current.String()) {
			fmt.Printf("✓ Already up to date (%s)\n", version)
			return nil
		}

		exe, err := selfupdate.ExecutablePath()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}

		fmt.Printf("→ Updating %s to %s... ", current, latest.Version())
		if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
			fmt.Println("✗ Failed")
			return fmt.Errorf("failed to update binary: %w", err)
		}
		fmt.Println("✓ Done")
		return nil
	},
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to AVWX",
	Long:  `Test the configured API token by fetching a known station.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Testing connection to AVWX at %s...\n", cfg.API.BaseURL)

		if err := client.TestConnection(commandContext(cmd)); err != nil {
			fmt.Println("✗ Connection failed")
			return err
		}

		fmt.Println("✓ Connection successful!")
		if presets := filters.ListFilters(); len(presets) > 0 {
			fmt.Printf("\nFilter presets:\n")
			for _, name := range presets {
				f, _ := filters.GetFilter(name)
				fmt.Printf("  • %s: %s\n", name, f.Expression())
			}
		}
		return nil
	},
}

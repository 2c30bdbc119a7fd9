package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getVersionInfo is populated by main via SetVersionInfo.
var getVersionInfo func() (version, commit, date string, dirty bool)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		if getVersionInfo != nil {
			version, commit, date, isDirty := getVersionInfo()
			status := "clean"
			if isDirty {
				status = "dirty"
			}
			fmt.Printf("javauml version %s (commit: %s, built: %s, %s)\n", version, commit, date, status)
		} else {
			fmt.Println("javauml version dev (commit: unknown, built: unknown, unknown)")
		}
	},
}

// SetVersionInfo wires the version metadata main.go compiles in.
func SetVersionInfo(fn func() (string, string, string, bool)) {
	getVersionInfo = fn
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

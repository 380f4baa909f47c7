// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idosh/clipwash"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show a clip's duration, sample rate, channels and format",
	Long: `Decode a clip and print its basic properties as JSON.

Examples:
  clipwash info recording.mp3
  clipwash info --format ogg downloaded.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	info, err := clipwash.Info(data, formatHint(args[0]))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

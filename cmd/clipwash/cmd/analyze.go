// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idosh/clipwash"
	"github.com/idosh/clipwash/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Measure a clip and score its quality",
	Long: `Decode a clip, measure peak, RMS, noise floor, SNR and silence, and
print the metrics with a 0-100 quality score as JSON.

Examples:
  clipwash analyze recording.wav
  clipwash analyze --format mp3 voicemail.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("analyze")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	buf, err := clipwash.Ingest(data, formatHint(args[0]))
	if err != nil {
		return err
	}
	log.Debug().
		Float64("duration", buf.Duration()).
		Int("sample_rate", buf.SampleRate).
		Msg("clip decoded")

	result, err := clipwash.Analyze(buf)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idosh/clipwash"
	"github.com/idosh/clipwash/convert"
	"github.com/idosh/clipwash/logger"
	"github.com/idosh/clipwash/reduce"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Remove noise and artifacts from a clip",
	Long: `Run the cleanup chain over a clip: spectral noise gate, click
suppression, echo damping, silence trimming and peak normalization, then
write the cleaned audio next to the input (or to --output).

The output format follows the output file extension; the bitrate flag
applies to lossy targets.

Examples:
  clipwash clean recording.wav
  clipwash clean noisy.mp3 -o cleaned.flac
  clipwash clean interview.wav --strength 0.9 --remove-silence
  clipwash clean music.flac --no-normalize --reduce-echo`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("output", "o", "", "output file path (default: input_cleaned.<ext>)")
	cleanCmd.Flags().String("bitrate", "192k", "bitrate for lossy output (128k, 192k, 256k, 320k)")

	cleanCmd.Flags().Float64("strength", 0.75, "noise gate strength, 0 to 1 (0 disables)")
	cleanCmd.Flags().Bool("remove-clicks", true, "suppress clicks and pops")
	cleanCmd.Flags().Bool("reduce-echo", false, "damp late reflections")
	cleanCmd.Flags().Bool("remove-silence", false, "trim long silent spans")
	cleanCmd.Flags().Bool("no-normalize", false, "skip peak normalization")

	_ = viper.BindPFlag("clean.strength", cleanCmd.Flags().Lookup("strength"))
	_ = viper.BindPFlag("clean.bitrate", cleanCmd.Flags().Lookup("bitrate"))
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("clean")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	buf, err := clipwash.Ingest(data, formatHint(args[0]))
	if err != nil {
		return err
	}

	removeClicks, _ := cmd.Flags().GetBool("remove-clicks")
	reduceEcho, _ := cmd.Flags().GetBool("reduce-echo")
	removeSilence, _ := cmd.Flags().GetBool("remove-silence")
	noNormalize, _ := cmd.Flags().GetBool("no-normalize")

	opts := reduce.Options{
		Strength:      viper.GetFloat64("clean.strength"),
		RemoveClicks:  removeClicks,
		ReduceEcho:    reduceEcho,
		RemoveSilence: removeSilence,
		Normalize:     !noNormalize,
	}

	cleaned, report, err := clipwash.Reduce(cmd.Context(), buf, opts)
	if err != nil {
		return err
	}
	log.Info().
		Float64("original_duration", report.OriginalDuration).
		Float64("processed_duration", report.ProcessedDuration).
		Msg("cleanup finished")

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		ext := filepath.Ext(args[0])
		outPath = strings.TrimSuffix(args[0], ext) + "_cleaned" + ext
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), "."))
	encoded, err := clipwash.Convert(cmd.Context(), cleaned, convert.Options{
		Format:  format,
		Bitrate: viper.GetString("clean.bitrate"),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}
	fmt.Printf("Cleaned audio written to %s (%.2fs -> %.2fs)\n",
		outPath, report.OriginalDuration, report.ProcessedDuration)
	return nil
}

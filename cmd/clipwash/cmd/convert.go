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
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Re-encode a clip into another format",
	Long: `Decode a clip and re-encode it. The target format follows the
output file extension, or the --to flag when writing to the default path.

Examples:
  clipwash convert recording.wav -o recording.mp3
  clipwash convert voicemail.m4a --to ogg --bitrate 128k
  clipwash convert podcast.mp3 -o podcast.wav --sample-rate 22050`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output", "o", "", "output file path (default: input.<target ext>)")
	convertCmd.Flags().String("to", "mp3", "target format (mp3, wav, ogg, flac, m4a)")
	convertCmd.Flags().String("bitrate", "192k", "bitrate for lossy targets (128k, 192k, 256k, 320k)")
	convertCmd.Flags().Int("sample-rate", 0, "resample to this rate before encoding (0 keeps the source rate)")

	_ = viper.BindPFlag("convert.to", convertCmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("convert.bitrate", convertCmd.Flags().Lookup("bitrate"))
	_ = viper.BindPFlag("convert.sample_rate", convertCmd.Flags().Lookup("sample-rate"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	buf, err := clipwash.Ingest(data, formatHint(args[0]))
	if err != nil {
		return err
	}

	format := viper.GetString("convert.to")
	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		if ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), ".")); ext != "" {
			format = ext
		}
	} else {
		outPath = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + format
	}

	encoded, err := clipwash.Convert(cmd.Context(), buf, convert.Options{
		Format:     format,
		Bitrate:    viper.GetString("convert.bitrate"),
		SampleRate: viper.GetInt("convert.sample_rate"),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}
	fmt.Printf("Converted audio written to %s (%d bytes)\n", outPath, len(encoded))
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/neurlang/vocfeat/audio"
	"github.com/neurlang/vocfeat/config"
	"github.com/neurlang/vocfeat/featio"
	"github.com/neurlang/vocfeat/mel"
	"github.com/spf13/cobra"
)

var (
	configPath string
	variant    string
	format     string
	outputFile string
	channel    int
	noResample bool
)

var rootCmd = &cobra.Command{
	Use:   "tomel <audio_file>",
	Short: "Extract vocoder mel features from a WAV or FLAC file",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&variant, "variant", "", "feature variant: tacotron2 or r9y9")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "output format: npy, f16 or png")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default <audio_file>.<format>)")
	rootCmd.Flags().IntVar(&channel, "channel", 0, "channel written by npy and png output")
	rootCmd.Flags().BoolVar(&noResample, "no-resample", false, "fail instead of resampling to the variant's rate")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = variant
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	if cmd.Flags().Changed("channel") {
		cfg.Output.Channel = channel
	}
	if noResample {
		cfg.Resample = false
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.Logger()

	v, _ := cfg.MelVariant()
	params, err := v.Params()
	if err != nil {
		return err
	}

	inputFile := args[0]
	wave, err := audio.Load(inputFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputFile, err)
	}
	logger.Info("loaded audio",
		"file", inputFile,
		"sample_rate", wave.SampleRate,
		"channels", wave.NumChannels(),
		"seconds", wave.Duration())

	if wave.SampleRate != params.SampleRate && cfg.Resample {
		logger.Info("resampling", "from", wave.SampleRate, "to", params.SampleRate)
		if wave, err = audio.Resample(wave, params.SampleRate); err != nil {
			return err
		}
	}

	m := mel.NewMel(v)
	m.Padding, _ = cfg.PadMode()
	m.Window, _ = cfg.AnalysisWindow()
	m.Logger = logger

	feats, err := m.ToMel(wave)
	if err != nil {
		return fmt.Errorf("extracting %s features: %w", v, err)
	}

	if outputFile == "" {
		outputFile = inputFile + "." + cfg.Output.Format
	}
	if err := featio.WriteFile(outputFile, feats, cfg.Output.Format, cfg.Output.Channel, cfg.Output.YReverse); err != nil {
		return err
	}

	logger.Info("wrote features",
		"file", outputFile,
		"variant", v.String(),
		"frames", feats.Frames,
		"mel_bins", feats.Bins,
		"channels", feats.Channels,
		"sum", feats.Sum())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("tomel failed", "error", err)
		os.Exit(1)
	}
}

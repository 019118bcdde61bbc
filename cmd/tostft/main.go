package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/neurlang/vocfeat/audio"
	"github.com/neurlang/vocfeat/config"
	"github.com/neurlang/vocfeat/featio"
	"github.com/neurlang/vocfeat/spectral"
	"github.com/spf13/cobra"
)

var (
	configPath string
	windowLen  int
	hopLen     int
	spectrum   string
	format     string
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "tostft <audio_file>",
	Short: "Compute the magnitude or power spectrogram of a WAV or FLAC file",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().IntVar(&windowLen, "window", 0, "window length in samples")
	rootCmd.Flags().IntVar(&hopLen, "hop", 0, "hop length in samples")
	rootCmd.Flags().StringVar(&spectrum, "spectrum", "", "magnitude or power")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "output format: npy, f16 or png")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default <audio_file>.<format>)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("window") {
		cfg.STFT.WindowLength = windowLen
	}
	if cmd.Flags().Changed("hop") {
		cfg.STFT.HopLength = hopLen
	}
	if cmd.Flags().Changed("spectrum") {
		cfg.STFT.Spectrum = spectrum
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.Logger()

	inputFile := args[0]
	wave, err := audio.Load(inputFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputFile, err)
	}

	pad, _ := cfg.PadMode()
	win, _ := cfg.AnalysisWindow()
	kind, _ := cfg.SpectrumKind()

	x, err := spectral.STFT(wave, cfg.STFT.WindowLength, cfg.STFT.HopLength,
		spectral.WithPadding(pad),
		spectral.WithWindow(win))
	if err != nil {
		return err
	}
	spec := spectral.Spectrum(x, kind)

	if outputFile == "" {
		outputFile = inputFile + "." + cfg.Output.Format
	}
	if err := featio.WriteFile(outputFile, spec, cfg.Output.Format, cfg.Output.Channel, cfg.Output.YReverse); err != nil {
		return err
	}

	logger.Info("wrote spectrogram",
		"file", outputFile,
		"spectrum", kind.String(),
		"frames", spec.Frames,
		"bins", spec.Bins,
		"channels", spec.Channels,
		"sum", spec.Sum())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("tostft failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env"
	"go.uber.org/zap"

	"github.com/scheerer/screen-colorconv/colorconv"
	"github.com/scheerer/screen-colorconv/internal/logging"
	"github.com/scheerer/screen-colorconv/internal/util"
	"github.com/scheerer/screen-colorconv/sampler"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var logger = logging.New("main")

type CLIConfig struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"all"`
}

const usage = `colorconv - convert colors between RGB, hex and HSL

Usage:
  colorconv hex R G B        RGB to "#rrggbb"
  colorconv rgb HEX          hex to RGB
  colorconv hsl R G B        RGB to HSL
  colorconv hsl2rgb H S L    HSL to RGB
  colorconv sample           print the color of the screen until Ctrl+C

Numbers may be separate arguments or one comma separated list.

Environment variables:
  LOG_LEVEL=info             debug, info, warn, error
  OUTPUT_FORMAT=all          sample output: hex, rgb, hsl, all
  CAPTURE_INTERVAL=500ms     time between screen samples
  COLOR_ALGO=AVERAGE         AVERAGE, SQUARED_AVERAGE, MEDIAN, MODE
  PIXEL_GRID_SIZE=5          sample every Nth pixel, 1 is the most accurate
  SCREEN_NUMBER=0            display to sample, 0 is the primary display
  SAMPLE_COUNT=0             stop after N samples, 0 runs until Ctrl+C
`

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		logger.Info("Shutting down")
		cancel()
	}()

	code := run(ctx, os.Args[1:], os.Stdout)
	cancel()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	config := CLIConfig{}
	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Error("Failed to parse environment variables")
		return 2
	}
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		logger.With(zap.Error(err)).Error("Invalid LOG_LEVEL")
		return 2
	}
	logging.GetLeveler().SetAllLevels(level)

	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "colorconv %s (commit %s)\n", Version, GitCommit)
		return 0
	case "--help", "-h", "help":
		fmt.Fprint(stdout, usage)
		return 0
	case "sample":
		return runSample(ctx, config, stdout)
	}

	out, err := convert(cmd, rest)
	if err != nil {
		logger.With(zap.String("command", cmd), zap.Strings("args", rest), zap.Error(err)).Error("Conversion failed")
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func convert(cmd string, args []string) (string, error) {
	switch cmd {
	case "hex":
		rgb, err := util.ParseNumbers[int](args, 3)
		if err != nil {
			return "", err
		}
		return colorconv.RGBToHex(rgb[0], rgb[1], rgb[2])
	case "rgb":
		if len(args) != 1 {
			return "", fmt.Errorf("expected 1 hex color, got %d arguments", len(args))
		}
		c, err := colorconv.HexToRGB(args[0])
		if err != nil {
			return "", err
		}
		return c.String(), nil
	case "hsl":
		rgb, err := util.ParseNumbers[int](args, 3)
		if err != nil {
			return "", err
		}
		c, err := colorconv.RGBToHSL(rgb[0], rgb[1], rgb[2])
		if err != nil {
			return "", err
		}
		return c.String(), nil
	case "hsl2rgb":
		hsl, err := util.ParseNumbers[float64](args, 3)
		if err != nil {
			return "", err
		}
		c, err := colorconv.HSLToRGB(hsl[0], hsl[1], hsl[2])
		if err != nil {
			return "", err
		}
		return c.String(), nil
	}
	return "", fmt.Errorf("unknown command %q", cmd)
}

func runSample(ctx context.Context, config CLIConfig, stdout io.Writer) int {
	samplerConfig := sampler.Config{}
	if err := env.Parse(&samplerConfig); err != nil {
		logger.With(zap.Error(err)).Error("Failed to parse environment variables")
		return 2
	}
	// fail on a bad format before the first capture
	if _, err := (sampler.Sample{}).Format(config.OutputFormat); err != nil {
		logger.With(zap.Error(err)).Error("Invalid OUTPUT_FORMAT")
		return 2
	}

	logger.With(zap.Any("config", samplerConfig), zap.String("OUTPUT_FORMAT", config.OutputFormat)).Info("Starting screen sampler")
	logger.Info("Press Ctrl+C to stop")

	s, err := sampler.New(samplerConfig, sampler.ReporterFunc(func(_ context.Context, sample sampler.Sample) error {
		line, err := sample.Format(config.OutputFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, line)
		return err
	}))
	if err != nil {
		logger.With(zap.Error(err)).Error("Failed to create sampler")
		return 2
	}

	if err := s.Run(ctx); err != nil {
		logger.With(zap.Error(err)).Error("Sampler stopped")
		return 1
	}
	return 0
}

package sampler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/screen-colorconv/colorconv"
	"github.com/scheerer/screen-colorconv/internal/logging"
	"github.com/scheerer/screen-colorconv/internal/screen"
)

var logger = logging.New("sampler")

type Config struct {
	CaptureInterval time.Duration `env:"CAPTURE_INTERVAL" envDefault:"500ms"`
	ColorAlgo       string        `env:"COLOR_ALGO" envDefault:"AVERAGE"`
	PixelGridSize   int           `env:"PIXEL_GRID_SIZE" envDefault:"5"`
	ScreenNumber    int           `env:"SCREEN_NUMBER" envDefault:"0"`
	// 0 samples until the context is cancelled.
	SampleCount int `env:"SAMPLE_COUNT" envDefault:"0"`
}

// Sample is the color of one captured frame in every supported notation.
type Sample struct {
	CapturedAt time.Time     `json:"capturedAt"`
	RGB        colorconv.RGB `json:"rgb"`
	Hex        string        `json:"hex"`
	HSL        colorconv.HSL `json:"hsl"`
}

// Format renders the sample as "hex", "rgb", "hsl" or "all".
func (s Sample) Format(format string) (string, error) {
	switch strings.ToLower(format) {
	case "hex":
		return s.Hex, nil
	case "rgb":
		return s.RGB.String(), nil
	case "hsl":
		return s.HSL.String(), nil
	case "all":
		return fmt.Sprintf("%s %s %s", s.Hex, s.RGB, s.HSL), nil
	}
	return "", fmt.Errorf("unknown output format %q, valid values are [hex, rgb, hsl, all]", format)
}

type Reporter interface {
	Report(ctx context.Context, sample Sample) error
}

type ReporterFunc func(ctx context.Context, sample Sample) error

func (f ReporterFunc) Report(ctx context.Context, sample Sample) error {
	return f(ctx, sample)
}

type Option func(*Sampler)

// WithCapture replaces screen.CaptureDisplay as the frame source.
func WithCapture(capture screen.CaptureFunc) Option {
	return func(s *Sampler) {
		s.capture = capture
	}
}

type Sampler struct {
	config       Config
	capture      screen.CaptureFunc
	computeColor screen.ColorFunc
	reporter     Reporter
}

func New(config Config, reporter Reporter, opts ...Option) (*Sampler, error) {
	if config.CaptureInterval <= 0 {
		return nil, fmt.Errorf("capture interval must be positive, got %v", config.CaptureInterval)
	}
	if config.PixelGridSize < 1 {
		return nil, fmt.Errorf("pixel grid size must be at least 1, got %d", config.PixelGridSize)
	}
	if config.SampleCount < 0 {
		return nil, fmt.Errorf("sample count must not be negative, got %d", config.SampleCount)
	}
	if reporter == nil {
		return nil, errors.New("reporter is required")
	}
	computeColor, err := screen.Algorithm(config.ColorAlgo)
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		config:       config,
		capture:      screen.CaptureDisplay,
		computeColor: computeColor,
		reporter:     reporter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run captures, reduces and reports one frame per capture interval until ctx
// is done or SampleCount samples were reported. Capture failures are logged
// and retried on the next tick; a reporter error stops the loop.
func (s *Sampler) Run(ctx context.Context) error {
	var lastWarning time.Time
	reported := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		startTime := time.Now()
		img, err := s.capture(s.config.ScreenNumber)
		captureScreenDuration := time.Since(startTime)
		if err != nil {
			logger.With(zap.Error(err)).Error("Failed to capture screen")
			if !s.sleep(ctx, s.config.CaptureInterval-captureScreenDuration) {
				return nil
			}
			continue
		}

		colorCalculationStart := time.Now()
		sample, err := newSample(startTime, s.computeColor(img, s.config.PixelGridSize))
		if err != nil {
			return err
		}
		colorCalculationDuration := time.Since(colorCalculationStart)

		if ctx.Err() != nil {
			// cancelled while capturing or calculating
			return nil
		}
		reportStart := time.Now()
		if err := s.reporter.Report(ctx, sample); err != nil {
			return fmt.Errorf("report sample: %w", err)
		}
		reportDuration := time.Since(reportStart)

		reported++
		if s.config.SampleCount > 0 && reported >= s.config.SampleCount {
			return nil
		}

		totalDuration := time.Since(startTime)
		if totalDuration > s.config.CaptureInterval {
			if time.Since(lastWarning) > 10*time.Second {
				logger.With(
					zap.Stringer("captureScreenDuration", captureScreenDuration),
					zap.Stringer("colorCalculationDuration", colorCalculationDuration),
					zap.Stringer("reportDuration", reportDuration),
					zap.Stringer("totalDuration", totalDuration)).
					Warn("Cannot keep up with CAPTURE_INTERVAL. Consider increasing PIXEL_GRID_SIZE or increasing CAPTURE_INTERVAL.")
				lastWarning = time.Now()
			}
		} else if !s.sleep(ctx, s.config.CaptureInterval-totalDuration) {
			return nil
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func (s *Sampler) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func newSample(capturedAt time.Time, c colorconv.RGB) (Sample, error) {
	hex, err := colorconv.RGBToHex(c.R, c.G, c.B)
	if err != nil {
		return Sample{}, fmt.Errorf("convert %v: %w", c, err)
	}
	hsl, err := colorconv.RGBToHSL(c.R, c.G, c.B)
	if err != nil {
		return Sample{}, fmt.Errorf("convert %v: %w", c, err)
	}
	return Sample{
		CapturedAt: capturedAt,
		RGB:        c,
		Hex:        hex,
		HSL:        hsl,
	}, nil
}

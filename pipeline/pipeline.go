// SPDX-License-Identifier: MIT
// Package: ljbind/pipeline
//
// pipeline.go — the driver sequence and its text/YAML renderers.

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ljbind/binding"
	"github.com/katalvlaran/ljbind/config"
	"github.com/katalvlaran/ljbind/distances"
	"github.com/katalvlaran/ljbind/pairing"
	"github.com/katalvlaran/ljbind/selfcheck"
)

// Format selects how the outcome is written.
type Format string

const (
	// FormatText writes human-readable lines.
	FormatText Format = "text"
	// FormatYAML writes one YAML document with the whole Outcome.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a Format other than text or yaml.
var ErrUnknownFormat = errors.New("pipeline: unknown output format")

// Outcome is everything a successful run produced.
type Outcome struct {
	Input     string            `yaml:"input"`
	Result    binding.Result    `yaml:"result"`
	SelfCheck selfcheck.Verdict `yaml:"selfcheck"`
	Trusted   bool              `yaml:"trusted"`
}

// Run executes one pass over the distance file at path using cfg and writes
// the report to w in the given format.
//
// Errors (all fatal, nothing about the total is written):
//   - load errors from distances.LoadFile (I/O, parse);
//   - pairing errors (errors.Is(err, pairing.ErrInvalidGeometry));
//   - potential errors raised while summing;
//   - ErrUnknownFormat or write errors.
//
// In text mode the pairing-check line is written before aggregation, also
// when the check fails.
func Run(cfg config.Config, path string, format Format, w io.Writer, log *zap.Logger) (Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if format != FormatText && format != FormatYAML {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if path == "" {
		path = cfg.Input
	}
	log = log.With(zap.String("input", path))

	ds, err := distances.LoadFile(path)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return Outcome{}, err
	}
	log.Debug("distances loaded", zap.Int("count", len(ds)))

	n, err := pairing.Validate(len(ds))
	if err != nil {
		log.Error("pairing check failed", zap.Int("pairings", len(ds)), zap.Error(err))
		if format == FormatText {
			_, _ = fmt.Fprintf(w, "Pairing check failed: %d pairings do not correspond to a whole number of objects\n", len(ds))
		}
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("pairing check passed", zap.Int("pairings", len(ds)), zap.Int("objects", n))

	res, err := binding.Aggregate(ds, cfg.Params())
	if err != nil {
		log.Error("aggregation failed", zap.Error(err))
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}
	for _, c := range res.Contributions() {
		log.Debug("pair energy",
			zap.Int("i", c.I), zap.Int("j", c.J),
			zap.Float64("distance_m", c.Distance), zap.Float64("energy_j", c.Energy))
	}

	verdict := selfcheck.Check(cfg.Params(), cfg.SelfCheckOptions()...)
	if !verdict.Trusted {
		log.Warn("self-check failed",
			zap.Float64("computed_j", verdict.Computed),
			zap.Float64("expected_j", verdict.Expected),
			zap.Float64("delta_j", verdict.Delta),
			zap.Error(verdict.Err))
	}

	out := Outcome{Input: path, Result: res, SelfCheck: verdict, Trusted: verdict.Trusted}
	if err := write(w, format, out); err != nil {
		return out, err
	}
	log.Info("run complete", zap.Float64("total_j", res.Total), zap.Bool("trusted", out.Trusted))

	return out, nil
}

// write renders out to w.
func write(w io.Writer, format Format, out Outcome) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("pipeline: encode yaml: %w", err)
		}
		return enc.Close()
	}

	verb := "imply"
	if out.Result.Pairings == 1 {
		verb = "implies"
	}
	lines := []string{
		fmt.Sprintf("Pairing check passed: %s %s %s",
			plural(out.Result.Pairings, "pairing"), verb, plural(out.Result.Objects, "object")),
	}
	lines = append(lines, out.Result.Report()...)
	lines = append(lines, out.SelfCheck.String())
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("pipeline: write: %w", err)
		}
	}

	return nil
}

// plural renders "1 pairing" or "n pairings".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

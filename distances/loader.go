// SPDX-License-Identifier: MIT
// Package: ljbind/distances
//
// loader.go — line-oriented reader for distance lists.

package distances

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads one distance per line from r and returns them in input order.
//
// Contract:
//   - surrounding whitespace (including a CR from CRLF files) is ignored;
//   - a trailing newline at EOF does not produce an extra line;
//   - any other empty line is a parse error;
//   - an empty input yields an empty, non-nil slice.
//
// Errors: *ParseError (wrapping ErrParse or ErrInvalidDistance), or the
// underlying read error.
// Complexity: O(L) time and space for L lines.
func Load(r io.Reader) ([]float64, error) {
	out := make([]float64, 0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: ErrParse}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, &ParseError{Line: line, Text: text, Err: ErrInvalidDistance}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("distances: read: %w", err)
	}

	return out, nil
}

// LoadFile opens path, loads it with Load and closes it before returning.
// Open failures keep their fs error so errors.Is(err, fs.ErrNotExist) works.
func LoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distances: open: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

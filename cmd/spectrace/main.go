// SPDX-License-Identifier: MIT

// Command spectrace runs the unshifted QR iteration on a matrix read from a
// text file and renders the convergence history — the off-diagonal norm per
// iteration — as a PNG, alongside the final eigenvalue estimates on stdout.
//
// Usage:
//
//	spectrace -config spectrace.ini
//
// The configuration is an INI file:
//
//	[spectrace]
//	matrix-file = examples/sym3.txt  ; whitespace-separated rows
//	epsilon     = 1e-9               ; optional, zero tolerance
//	max-iter    = 1000               ; optional, iteration count
//	output      = convergence.png    ; plot destination
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	gcfg "gopkg.in/gcfg.v1"

	"github.com/katalvlaran/lvlinalg/eigen"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// config mirrors the [spectrace] section of the INI file.
type config struct {
	Spectrace struct {
		MatrixFile string `gcfg:"matrix-file"`
		Epsilon    float64
		MaxIter    int `gcfg:"max-iter"`
		Output     string
	}
}

func main() {
	cfgPath := flag.String("config", "spectrace.ini", "path to the INI configuration")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, "spectrace:", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	var cfg config
	cfg.Spectrace.Epsilon = eigen.DefaultEpsilon
	cfg.Spectrace.MaxIter = eigen.DefaultMaxIterations
	cfg.Spectrace.Output = "convergence.png"
	if err := gcfg.ReadFileInto(&cfg, cfgPath); err != nil {
		return fmt.Errorf("read config %q: %w", cfgPath, err)
	}
	if cfg.Spectrace.MatrixFile == "" {
		return fmt.Errorf("config %q: matrix-file is required", cfgPath)
	}

	a, err := readMatrix(cfg.Spectrace.MatrixFile)
	if err != nil {
		return err
	}

	trace, err := iterate(a, cfg.Spectrace.Epsilon, cfg.Spectrace.MaxIter)
	if err != nil {
		return err
	}

	res, err := eigen.Decompose(a,
		eigen.WithEpsilon(cfg.Spectrace.Epsilon),
		eigen.WithMaxIterations(cfg.Spectrace.MaxIter))
	if err != nil {
		return err
	}
	for i, lambda := range res.Values {
		fmt.Printf("lambda[%d] = %.9g\n", i, lambda)
	}

	return renderTrace(trace, cfg.Spectrace.Output)
}

// readMatrix parses whitespace-separated rows, one matrix row per line.
// Blank lines and lines starting with '#' are skipped.
func readMatrix(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, field := range fields {
			row[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix file %q line %d: %w", path, len(rows)+1, err)
			}
		}
		rows = append(rows, row)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read matrix file: %w", err)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	if !matrix.IsSquare(m) {
		return nil, fmt.Errorf("matrix file %q: %w", path, matrix.ErrNonSquare)
	}

	return m, nil
}

// iterate replays the QR iteration, recording the off-diagonal Frobenius
// norm after each step.
func iterate(a matrix.Matrix, eps float64, maxIter int) ([]float64, error) {
	iter, err := matrix.CloneMatrix(a)
	if err != nil {
		return nil, err
	}

	trace := make([]float64, 0, maxIter)
	for k := 0; k < maxIter; k++ {
		pair, qrErr := eigen.QR(iter, eigen.WithEpsilon(eps))
		if qrErr != nil {
			return nil, qrErr
		}
		iter, err = matrix.Mul(pair.R, pair.Q)
		if err != nil {
			return nil, err
		}
		trace = append(trace, offDiagonalNorm(iter))
	}

	return trace, nil
}

// offDiagonalNorm is the Frobenius norm of the strictly off-diagonal part.
func offDiagonalNorm(m *matrix.Dense) float64 {
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if i == j {
				continue
			}
			v, _ := m.At(i, j)
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}

// renderTrace plots the convergence history and writes it as a PNG.
func renderTrace(trace []float64, output string) error {
	p := plot.New()
	p.Title.Text = "QR iteration convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "off-diagonal Frobenius norm"

	pts := make(plotter.XYs, len(trace))
	for i, v := range trace {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build trace line: %w", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, output); err != nil {
		return fmt.Errorf("save plot %q: %w", output, err)
	}

	return nil
}

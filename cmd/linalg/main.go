// Command linalg evaluates one matrix operation on literals given as flags.
//
//	linalg -op det -m "2,7; 5,9"
//	linalg -op mulvec -m "2,-2; -2,2" -v "4,2"
//	linalg -op mul -m "1,2; 3,4" -b "0,1; 1,0"
//
// Settings come from LINALG_LOG_LEVEL, LINALG_EPSILON and LINALG_PRECISION,
// optionally through a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/linalg/gonumx"
	"github.com/katalvlaran/linalg/internal/textio"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"go.uber.org/zap"
)

// errUsage marks a bad command line; main maps it to exit code 2.
var errUsage = errors.New("usage")

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err = run(os.Args[1:], os.Stdout, logger, cfg); err != nil {
		logger.Error("operation failed", zap.Error(err))
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run parses args, evaluates the requested operation and writes the result to w.
func run(args []string, w io.Writer, log *zap.Logger, cfg *Config) error {
	fs := flag.NewFlagSet("linalg", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	op := fs.String("op", "", "det|detlu|rref|rank|trace|transpose|mulvec|mul|shape")
	mLit := fs.String("m", "", "matrix literal, rows split by ';' and cells by ','")
	vLit := fs.String("v", "", "vector literal for mulvec")
	bLit := fs.String("b", "", "right-hand matrix literal for mul")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *op == "" || *mLit == "" {
		return fmt.Errorf("%w: -op and -m are required", errUsage)
	}

	m, err := parseMatrix(*mLit)
	if err != nil {
		return err
	}
	log.Debug("parsed operand", zap.String("op", *op), zap.Stringer("shape", m.Shape()))

	num := func(x float64) string { return strconv.FormatFloat(x, 'f', cfg.Precision, 64) }
	eps := matrix.WithEpsilon(cfg.Epsilon)

	switch *op {
	case "shape":
		_, err = fmt.Fprintln(w, m.Shape())
	case "det":
		var d float64
		if d, err = m.Determinant(); err == nil {
			_, err = fmt.Fprintln(w, num(d))
		}
	case "detlu":
		var d float64
		if d, err = gonumx.Det(m); err == nil {
			_, err = fmt.Fprintln(w, num(d))
		}
	case "trace":
		var tr float64
		if tr, err = m.Trace(); err == nil {
			_, err = fmt.Fprintln(w, num(tr))
		}
	case "rank":
		_, err = fmt.Fprintln(w, m.Rank(eps))
	case "rref":
		var r *matrix.Matrix[float64]
		if r, err = m.RowEchelon(eps); err == nil {
			_, err = io.WriteString(w, r.Format(cfg.Precision))
		}
	case "transpose":
		_, err = io.WriteString(w, m.Transposed().Format(cfg.Precision))
	case "mulvec":
		err = mulVec(w, m, *vLit, cfg.Precision)
	case "mul":
		err = mulMat(w, m, *bLit, cfg.Precision)
	default:
		return fmt.Errorf("%w: unknown operation %q", errUsage, *op)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", *op, err)
	}
	log.Info("done", zap.String("op", *op))

	return nil
}

func mulVec(w io.Writer, m *matrix.Matrix[float64], lit string, precision int) error {
	if lit == "" {
		return fmt.Errorf("%w: -v is required for mulvec", errUsage)
	}
	xs, err := textio.ParseVector(lit)
	if err != nil {
		return err
	}
	y, err := m.MulVec(vector.New(xs...))
	if err != nil {
		return err
	}
	col, err := matrix.FromColumns(y)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, col.Transposed().Format(precision))

	return err
}

func mulMat(w io.Writer, m *matrix.Matrix[float64], lit string, precision int) error {
	if lit == "" {
		return fmt.Errorf("%w: -b is required for mul", errUsage)
	}
	b, err := parseMatrix(lit)
	if err != nil {
		return err
	}
	p, err := m.MulMat(b)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, p.Format(precision))

	return err
}

func parseMatrix(lit string) (*matrix.Matrix[float64], error) {
	rows, err := textio.ParseMatrix(lit)
	if err != nil {
		return nil, err
	}

	return matrix.FromRowSlices(rows)
}

// Command fracdemo demonstrates the fraction package, by printing the result
// of each arithmetic operation on two fractions, a and b.
//
// Run with: go run ./cmd/fracdemo/ [-config operands.toml] [-format json]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/go-fraction"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type logger = logiface.Logger[*stumpy.Event]

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(`fracdemo`, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String(`config`, ``, `TOML file providing the operands a and b`)
	format := fs.String(`format`, formatText, `output format, text or json`)
	logLevel := fs.String(`log-level`, logiface.LevelError.String(), `minimum log level, e.g. err, warning, info, debug`)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, ok := parseLevel(*logLevel)
	if !ok {
		fmt.Fprintf(stderr, "fracdemo: invalid log level: %s\n", *logLevel)
		return exitUsage
	}
	log := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(stderr), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(level),
	)

	p, ok := newPrinter(*format, stdout)
	if !ok {
		log.Err().Str(`format`, *format).Log(`invalid output format`)
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Err().Err(err).Str(`config`, *configPath).Log(`failed to load config`)
		return exitFailure
	}
	log.Debug().
		Str(`config`, *configPath).
		Stringer(`a`, cfg.A).
		Stringer(`b`, cfg.B).
		Log(`loaded operands`)

	a, err := cfg.A.fraction()
	if err != nil {
		log.Err().Err(err).Log(`invalid operand a`)
		return exitFailure
	}
	b, err := cfg.B.fraction()
	if err != nil {
		log.Err().Err(err).Log(`invalid operand b`)
		return exitFailure
	}

	if !demo(log, p, a, b) {
		return exitFailure
	}
	if err := p.err; err != nil {
		log.Err().Err(err).Log(`failed to write output`)
		return exitFailure
	}
	return exitOK
}

// demo prints each result, returning false if any operation failed.
func demo(log *logger, p *printer, a, b fraction.Fraction) bool {
	p.value(`a`, a)
	p.value(`b`, b)

	ok := true
	for _, op := range [...]struct {
		expr string
		fn   func(x *fraction.Fraction, y fraction.Fraction) error
	}{
		{`a + b`, (*fraction.Fraction).AddAssign},
		{`a - b`, (*fraction.Fraction).SubAssign},
		{`a * b`, (*fraction.Fraction).MulAssign},
		{`a / b`, (*fraction.Fraction).DivAssign},
	} {
		v := a
		if err := op.fn(&v, b); err != nil {
			ok = false
			log.Err().Err(err).Str(`expr`, op.expr).Log(`operation failed`)
			p.failure(op.expr, err)
			continue
		}
		log.Debug().Str(`expr`, op.expr).Stringer(`result`, v).Log(`evaluated`)
		p.value(op.expr, v)
	}

	f, exact := a.Float64()
	if !exact {
		log.Info().Stringer(`a`, a).Float64(`approximation`, f).Log(`inexact float conversion`)
	}
	p.float(`double(a)`, f)

	return ok
}

func parseLevel(s string) (logiface.Level, bool) {
	if s == logiface.LevelDisabled.String() {
		return logiface.LevelDisabled, true
	}
	for l := logiface.LevelEmergency; l <= logiface.LevelTrace; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

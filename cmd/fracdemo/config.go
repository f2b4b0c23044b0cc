package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joeycumines/go-fraction"
	"github.com/pelletier/go-toml/v2"
)

type (
	// config models the (optional) TOML file, e.g.
	//
	//	[a]
	//	num = 1
	//	den = 2
	//
	//	[b]
	//	num = 3
	//	den = 4
	config struct {
		A operand `toml:"a"`
		B operand `toml:"b"`
	}

	// operand is kept as raw integers, validated by fraction.Try.
	operand struct {
		Num int64 `toml:"num"`
		Den int64 `toml:"den"`
	}
)

func defaultConfig() config {
	return config{
		A: operand{Num: 1, Den: 2},
		B: operand{Num: 3, Den: 4},
	}
}

// loadConfig returns the defaults, with any values from the file at path
// applied over the top. Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == `` {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return c, nil
}

func (x operand) fraction() (fraction.Fraction, error) {
	return fraction.Try(x.Num, x.Den)
}

func (x operand) String() string {
	return fmt.Sprintf("%d/%d", x.Num, x.Den)
}

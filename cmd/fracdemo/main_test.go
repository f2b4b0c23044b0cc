package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDemo(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var o, e bytes.Buffer
	code = run(args, &o, &e)
	return code, o.String(), e.String()
}

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), `operands.toml`)
	require.NoError(t, os.WriteFile(path, []byte(s), 0o600))
	return path
}

func TestRun_default(t *testing.T) {
	code, stdout, stderr := runDemo(t)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, `a = 1/2
b = 3/4
a + b = 5/4
a - b = -1/4
a * b = 3/8
a / b = 2/3
double(a) = 0.5
`, stdout)
	assert.Empty(t, stderr)
}

func TestRun_json(t *testing.T) {
	code, stdout, _ := runDemo(t, `-format`, `json`)
	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), line)
	}
	assert.Equal(t, `{"expr":"a + b","value":"5/4"}`, lines[2])
	assert.Equal(t, `{"expr":"double(a)","value":0.5}`, lines[6])
}

func TestRun_config(t *testing.T) {
	path := writeConfig(t, `
[a]
num = -2
den = 6

[b]
den = 5
`)
	code, stdout, _ := runDemo(t, `-config`, path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, `a = -1/3
b = 3/5
a + b = 4/15
a - b = -14/15
a * b = -1/5
a / b = -5/9
double(a) = -0.3333333333333333
`, stdout)
}

func TestRun_divisionByZero(t *testing.T) {
	path := writeConfig(t, "[b]\nnum = 0\n")
	code, stdout, stderr := runDemo(t, `-config`, path, `-format`, `json`)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, `{"expr":"a / b","error":"fraction: div(1/2, 0/1): division by zero"}`)
	assert.Contains(t, stdout, `{"expr":"a * b","value":"0/1"}`)
	assert.Contains(t, stderr, `operation failed`)
	assert.Contains(t, stderr, `division by zero`)
}

func TestRun_debugLogging(t *testing.T) {
	code, _, stderr := runDemo(t, `-log-level`, `debug`)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `loaded operands`)
	assert.Contains(t, stderr, `"result":"5/4"`)
}

func TestRun_errors(t *testing.T) {
	for _, tt := range [...]struct {
		name   string
		args   []string
		config string
		code   int
		stderr string
	}{
		{"unknown flag", []string{`-nope`}, ``, exitUsage, `flag provided but not defined`},
		{"invalid format", []string{`-format`, `xml`}, ``, exitUsage, `invalid output format`},
		{"invalid log level", []string{`-log-level`, `loud`}, ``, exitUsage, `invalid log level`},
		{"missing config", []string{`-config`, filepath.Join(t.TempDir(), `missing.toml`)}, ``, exitFailure, `failed to load config`},
		{"invalid toml", nil, `[a`, exitFailure, `failed to load config`},
		{"unknown key", nil, "[a]\nnumerator = 1\n", exitFailure, `failed to load config`},
		{"zero denominator", nil, "[a]\nden = 0\n", exitFailure, `invalid operand a`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.config != `` {
				args = append(args, `-config`, writeConfig(t, tt.config))
			}
			code, stdout, stderr := runDemo(t, args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.stderr)
			assert.Empty(t, stdout)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range [...]string{`disabled`, `emerg`, `err`, `warning`, `info`, `debug`, `trace`} {
		l, ok := parseLevel(s)
		if assert.True(t, ok, s) {
			assert.Equal(t, s, l.String())
		}
	}
	_, ok := parseLevel(`error`)
	assert.False(t, ok)
}

package main

import (
	"io"
	"strconv"

	"github.com/joeycumines/go-fraction"
	"github.com/joeycumines/go-utilpkg/jsonenc"
)

const (
	formatText = `text`
	formatJSON = `json`
)

// printer writes one line per result, retaining the first write error.
type printer struct {
	w    io.Writer
	json bool
	buf  []byte
	err  error
}

func newPrinter(format string, w io.Writer) (*printer, bool) {
	switch format {
	case formatText:
		return &printer{w: w}, true
	case formatJSON:
		return &printer{w: w, json: true}, true
	default:
		return nil, false
	}
}

func (x *printer) value(expr string, v fraction.Fraction) {
	b := x.start(expr)
	if x.json {
		b = append(b, `"value":"`...)
		b = v.Append(b)
		b = append(b, '"')
	} else {
		b = v.Append(b)
	}
	x.end(b)
}

func (x *printer) float(expr string, f float64) {
	b := x.start(expr)
	if x.json {
		b = append(b, `"value":`...)
		b = jsonenc.AppendFloat64(b, f)
	} else {
		b = strconv.AppendFloat(b, f, 'g', -1, 64)
	}
	x.end(b)
}

func (x *printer) failure(expr string, err error) {
	b := x.start(expr)
	if x.json {
		b = append(b, `"error":`...)
		b = jsonenc.AppendString(b, err.Error())
	} else {
		b = append(b, `error: `...)
		b = append(b, err.Error()...)
	}
	x.end(b)
}

func (x *printer) start(expr string) []byte {
	b := x.buf[:0]
	if x.json {
		b = append(b, `{"expr":`...)
		b = jsonenc.AppendString(b, expr)
		b = append(b, ',')
	} else {
		b = append(b, expr...)
		b = append(b, ` = `...)
	}
	return b
}

func (x *printer) end(b []byte) {
	if x.json {
		b = append(b, '}')
	}
	b = append(b, '\n')
	x.buf = b
	if x.err == nil {
		_, x.err = x.w.Write(b)
	}
}

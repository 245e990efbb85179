// Package demo implements the listdemo subprogram.
//
// The demo builds a list from its input elements, maps every element by a
// scale factor, and writes half of each mapped element on its own line:
//
//	$ listdemo
//	3
//	4
//	5
package demo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"listdemo/pkg/logutil"
	"listdemo/pkg/mymath"
	"listdemo/pkg/persistent/list"
	"listdemo/pkg/prog"
	"listdemo/pkg/sys"
)

var logger = logutil.GetLogger("[demo] ")

// Program is the demo subprogram. It always runs, so it should be the last
// program in a [prog.Composite].
type Program struct {
	input          string
	scale          floatFlag
	findMultipleOf intFlag
	json           *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	// Unlike the flags defined with StringVar and friends, flags defined with
	// Var don't reset their values on registration.
	p.scale, p.findMultipleOf = floatFlag{}, intFlag{}
	fs.StringVar(&p.input, "input", "",
		"Path to a YAML file with the elements and options of the demo")
	fs.Var(&p.scale, "scale",
		"Multiply each element by this factor before halving (default 2)")
	fs.Var(&p.findMultipleOf, "find-multiple-of",
		"Also output the first element that is a multiple of this number")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := p.config(args)
	if err != nil {
		return err
	}
	logger.Printf("elements %v, scale %v, find multiple of %v",
		cfg.Elements, cfg.Scale, cfg.FindMultipleOf)

	var out writer
	if p.json != nil && *p.json {
		out = &jsonWriter{w: fds[1]}
	} else {
		out = &lineWriter{w: fds[1], styled: useStyle(fds[1])}
	}
	return write(out, cfg)
}

func (p *Program) config(args []string) (Config, error) {
	cfg := DefaultConfig()
	if p.input != "" {
		var err error
		cfg, err = LoadConfig(p.input, cfg)
		if err != nil {
			var cfgErr *configError
			if errors.As(err, &cfgErr) {
				return cfg, prog.BadUsage(err.Error())
			}
			return cfg, fmt.Errorf("cannot read input: %w", err)
		}
	}
	if len(args) > 0 {
		elems, err := ParseElements(args)
		if err != nil {
			return cfg, prog.BadUsage(err.Error())
		}
		cfg.Elements = elems
	}
	if p.scale.set {
		cfg.Scale = p.scale.value
	}
	if p.findMultipleOf.set {
		cfg.FindMultipleOf = p.findMultipleOf.value
	}
	return cfg, nil
}

// write evaluates the demo for cfg and sends the results to out.
func write(out writer, cfg Config) error {
	elems := list.Of(cfg.Elements...)
	scaled := list.Map(elems, func(x float64) float64 { return x * cfg.Scale })
	for v := range scaled.All() {
		h := mymath.Halve(v)
		logger.Printf("%v halves to %v", v, h)
		if err := out.value(h); err != nil {
			return err
		}
	}
	if cfg.FindMultipleOf != 0 {
		n := float64(cfg.FindMultipleOf)
		v, ok := elems.Find(func(x float64) bool { return math.Mod(x, n) == 0 })
		if err := out.find(v, ok); err != nil {
			return err
		}
	}
	return out.close()
}

type writer interface {
	value(v float64) error
	find(v float64, found bool) error
	close() error
}

type lineWriter struct {
	w      io.Writer
	styled bool
}

func (lw *lineWriter) value(v float64) error {
	s := FormatNumber(v)
	if lw.styled {
		s = "\033[1m" + s + "\033[m"
	}
	_, err := fmt.Fprintln(lw.w, s)
	return err
}

func (lw *lineWriter) find(v float64, found bool) error {
	s := "none"
	if found {
		s = FormatNumber(v)
	}
	_, err := fmt.Fprintln(lw.w, "find:", s)
	return err
}

func (lw *lineWriter) close() error { return nil }

type jsonWriter struct {
	w      io.Writer
	values []float64
	found  json.RawMessage
}

type jsonOutput struct {
	Values []float64       `json:"values"`
	Find   json.RawMessage `json:"find,omitempty"`
}

func (jw *jsonWriter) value(v float64) error {
	jw.values = append(jw.values, v)
	return nil
}

func (jw *jsonWriter) find(v float64, found bool) error {
	if found {
		jw.found = json.RawMessage(FormatNumber(v))
	} else {
		jw.found = json.RawMessage("null")
	}
	return nil
}

func (jw *jsonWriter) close() error {
	values := jw.values
	if values == nil {
		values = []float64{}
	}
	return json.NewEncoder(jw.w).Encode(jsonOutput{values, jw.found})
}

// Styles are only used when writing to a terminal, and can be turned off by
// setting NO_COLOR (https://no-color.org) to a non-empty value.
func useStyle(f *os.File) bool {
	return os.Getenv("NO_COLOR") == "" && sys.IsATTY(f)
}

type floatFlag struct {
	value float64
	set   bool
}

func (f *floatFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return FormatNumber(f.value)
}

func (f *floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("not a number")
	}
	f.value, f.set = v, true
	return nil
}

type intFlag struct {
	value int
	set   bool
}

func (f *intFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not an integer")
	}
	f.value, f.set = v, true
	return nil
}

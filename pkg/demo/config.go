package demo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the input of the demo.
type Config struct {
	// Elements of the list to build.
	Elements []float64 `yaml:"elements"`
	// Factor that each element is multiplied by.
	Scale float64 `yaml:"scale"`
	// If non-zero, also report the first element that is a multiple of it.
	FindMultipleOf int `yaml:"find-multiple-of"`
}

// DefaultConfig returns the configuration used when there is no input file,
// no arguments and no flags.
func DefaultConfig() Config {
	return Config{Elements: []float64{3, 4, 5}, Scale: 2}
}

// configFile mirrors Config, using pointers to tell missing keys from zero
// values.
type configFile struct {
	Elements       []float64 `yaml:"elements"`
	Scale          *float64  `yaml:"scale"`
	FindMultipleOf *int      `yaml:"find-multiple-of"`
}

// ParseConfig reads a YAML document and applies it on top of base. Keys
// missing from the document leave the corresponding fields of base
// unchanged. Unknown keys are an error.
func ParseConfig(r io.Reader, base Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f configFile
	err := dec.Decode(&f)
	if errors.Is(err, io.EOF) {
		// Empty document
		return base, nil
	} else if err != nil {
		return base, err
	}
	if f.Elements != nil {
		base.Elements = f.Elements
	}
	if f.Scale != nil {
		base.Scale = *f.Scale
	}
	if f.FindMultipleOf != nil {
		base.FindMultipleOf = *f.FindMultipleOf
	}
	return base, nil
}

// LoadConfig is like ParseConfig, but reads the named file.
func LoadConfig(fname string, base Config) (Config, error) {
	file, err := os.Open(fname)
	if err != nil {
		return base, err
	}
	defer file.Close()
	cfg, err := ParseConfig(file, base)
	if err != nil {
		return base, &configError{fname, err}
	}
	return cfg, nil
}

type configError struct {
	fname string
	err   error
}

func (e *configError) Error() string {
	return fmt.Sprintf("bad input file %s: %v", e.fname, e.err)
}

func (e *configError) Unwrap() error { return e.err }

// ParseElements parses command-line arguments as list elements.
func ParseElements(args []string) ([]float64, error) {
	elems := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("bad element %q: not a number", arg)
		}
		elems[i] = v
	}
	return elems, nil
}

// FormatNumber formats a number in decimal notation, using the fewest digits
// that read back to the same value. Integral values have no fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. Flags shared by more than one subprogram
// are registered lazily through its methods, so that each of them is defined
// once no matter how many subprograms ask for it.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it if
// needed.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -buildinfo, -version or the demo in JSON")
		fs.json = &json
	}
	return fs.json
}

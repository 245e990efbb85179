// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	// Function being tested
//	func neg(i int) int { return -i }
//
//	func TestNeg(t *testing.T) {
//		tt.Test(t, neg,
//			Args(0).Rets(0),
//			Args(1).Rets(-1),
//		)
//	}
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself, so that those calls can be chained
// like Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test, along with how to format its
// arguments and return values in error messages.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn creates a FnDescriptor for the given function.
func Fn(name string, body any) *FnDescriptor {
	return &FnDescriptor{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// returns fn itself.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error messages,
// and returns fn itself.
func (fn *FnDescriptor) RetsFmt(s string) *FnDescriptor {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The function may be a
// *FnDescriptor, or a bare function, in which case its name is derived with
// reflection.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	var fd *FnDescriptor
	switch fn := fn.(type) {
	case *FnDescriptor:
		fd = fn
	default:
		fd = Fn(funcName(fn), fn)
	}
	for _, test := range tests {
		rets := call(fd.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var args string
				if fd.argsFmt == "" {
					args = sprintCommaDelimited(test.args...)
				} else {
					args = fmt.Sprintf(fd.argsFmt, test.args...)
				}
				var diff string
				if fd.retsFmt == "" {
					diff = cmp.Diff(retsMatcher, rets, cmpopt)
				} else {
					diff = cmp.Diff(
						fmt.Sprintf(fd.retsFmt, retsMatcher...),
						fmt.Sprintf(fd.retsFmt, rets...))
				}
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s", fd.name, args, diff)
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

var cmpopt = cmp.Exporter(func(reflect.Type) bool { return true })

func match(matchers, actual []any) bool {
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmpopt)
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(f any) string {
	name := strings.TrimSuffix(runtimeFuncName(f), "[...]")
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func runtimeFuncName(f any) string {
	return runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
}

func call(fn any, args []any) []any {
	argsReflect := make([]reflect.Value, len(args))
	fnType := reflect.TypeOf(fn)
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which can't be
			// passed to Call. Use the zero value of the parameter type.
			var argType reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				argType = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				argType = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(argType)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, ret := range retsReflect {
		rets[i] = ret.Interface()
	}
	return rets
}

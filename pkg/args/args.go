// Package args destructures template call arguments. Callers pull named
// parameters in declaration order; each one is taken from the next
// positional argument when one is left, otherwise from keyword arguments.
// A parameter supplied both ways is rejected.
package args

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-runconfig/pkg/value"
)

var (
	// ErrMissingArgument reports a required parameter with no argument.
	ErrMissingArgument = errors.New("missing argument")
	// ErrTooManyArguments reports positional or keyword arguments left over
	// once every parameter was read.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrInvalidArgument reports an argument of the wrong kind.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error describes an argument failure for a named parameter.
type Error struct {
	Param  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("args: ")
	b.WriteString(e.Err.Error())
	if e.Param != "" {
		fmt.Fprintf(&b, " %q", e.Param)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Kwargs carries keyword arguments. Engines append it as the last element of
// the argument list.
type Kwargs struct {
	values *value.Map
}

// NewKwargs wraps keyword arguments into a Value suitable for the trailing
// argument slot.
func NewKwargs(entries map[string]value.Value) value.Value {
	return value.FromObject(&Kwargs{values: value.NewMap(entries)})
}

// GetValue implements value.Object.
func (k *Kwargs) GetValue(key value.Value) (value.Value, bool) {
	return k.values.GetValue(key)
}

func (k *Kwargs) String() string { return k.values.String() }

// Parser walks a call's arguments.
type Parser struct {
	positional []value.Value
	kwargs     *value.Map
	next       int
	used       map[string]struct{}
	err        error
}

// New splits args into positional and keyword arguments.
func New(args []value.Value) *Parser {
	p := &Parser{used: map[string]struct{}{}}
	if n := len(args); n > 0 {
		if obj, ok := args[n-1].AsObject(); ok {
			if kw, ok := obj.(*Kwargs); ok {
				p.kwargs = kw.values
				args = args[:n-1]
			}
		}
	}
	p.positional = args
	return p
}

// Get returns the required parameter name.
func (p *Parser) Get(name string) (value.Value, error) {
	v, ok, err := p.take(name)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.Value{}, &Error{Param: name, Err: ErrMissingArgument}
	}
	return v, nil
}

// GetString returns the required parameter name, which must be a string.
func (p *Parser) GetString(name string) (string, error) {
	v, err := p.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", &Error{
			Param:  name,
			Detail: "expected string, got " + v.Kind().String(),
			Err:    ErrInvalidArgument,
		}
	}
	return s, nil
}

// GetOptional returns the parameter name when an argument was supplied.
// A duplicate argument is reported by Finish.
func (p *Parser) GetOptional(name string) (value.Value, bool) {
	v, ok, err := p.take(name)
	if err != nil {
		p.fail(err)
		return value.Value{}, false
	}
	return v, ok
}

// GetOr returns the parameter name, or fallback when it was not supplied.
func (p *Parser) GetOr(name string, fallback value.Value) value.Value {
	if v, ok := p.GetOptional(name); ok {
		return v
	}
	return fallback
}

// Finish fails when arguments remain unread or an optional parameter was
// supplied twice.
func (p *Parser) Finish() error {
	if p.err != nil {
		return p.err
	}
	if extra := len(p.positional) - p.next; extra > 0 {
		return &Error{
			Detail: fmt.Sprintf("%d unexpected positional argument(s)", extra),
			Err:    ErrTooManyArguments,
		}
	}
	var unknown []string
	p.kwargs.Range(func(key string, _ value.Value) bool {
		if _, ok := p.used[key]; !ok {
			unknown = append(unknown, key)
		}
		return true
	})
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &Error{
			Detail: "unexpected keyword argument(s) " + strings.Join(unknown, ", "),
			Err:    ErrTooManyArguments,
		}
	}
	return nil
}

func (p *Parser) take(name string) (value.Value, bool, error) {
	kw, hasKw := p.kwargs.Get(name)
	if p.next < len(p.positional) {
		if hasKw {
			p.used[name] = struct{}{}
			return value.Value{}, false, &Error{
				Param:  name,
				Detail: "duplicate argument, given positionally and by keyword",
				Err:    ErrInvalidArgument,
			}
		}
		v := p.positional[p.next]
		p.next++
		return v, true, nil
	}
	if hasKw {
		p.used[name] = struct{}{}
		return kw, true, nil
	}
	return value.Value{}, false, nil
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

package runconfig

import (
	"errors"
	"strings"
)

// ErrorKind classifies failures raised from template calls.
type ErrorKind int

const (
	// KindInvalidConfig marks a config entry with an unusable shape.
	KindInvalidConfig ErrorKind = iota + 1
	// KindUnknownMethod marks a call to a method the object does not expose.
	KindUnknownMethod
	// KindArgument marks malformed or missing call arguments.
	KindArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfig:
		return "invalid config"
	case KindUnknownMethod:
		return "unknown method"
	case KindArgument:
		return "argument error"
	default:
		return "error"
	}
}

// Sentinels matched with errors.Is against *Error values.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownMethod = errors.New("unknown method")
	ErrArgument      = errors.New("argument error")
)

// Error is returned by CallMethod. Object and Method identify the call site;
// Err holds the underlying cause when there is one.
type Error struct {
	Kind    ErrorKind
	Object  string
	Method  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("runconfig: ")
	if e.Object != "" {
		b.WriteString(e.Object)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
		b.WriteString(": ")
	}
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(e.Kind.String())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		out = append(out, sentinel)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindUnknownMethod:
		return ErrUnknownMethod
	case KindArgument:
		return ErrArgument
	default:
		return nil
	}
}

func invalidConfig(method, message string) error {
	return &Error{Kind: KindInvalidConfig, Object: TypeName, Method: method, Message: message}
}

func unknownMethod(name string) error {
	return &Error{
		Kind:    KindUnknownMethod,
		Object:  TypeName,
		Method:  name,
		Message: "unknown method on " + TypeName + ": " + name,
	}
}

func argumentError(method string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindArgument, Object: TypeName, Method: method, Err: err}
}

// Package loxerr defines the structured parser and runtime error
// taxonomies (spec §7) and the diagnostic renderer that maps them to
// human-readable, source-cited output.
package loxerr

import "fmt"

// ParserErrorKind enumerates the closed set of parse-time failures.
type ParserErrorKind int

const (
	EOFKind ParserErrorKind = iota
	UnexpectedToken
	ObjectKey
	MemberExpr
	PrimaryExpr
	ConstValueNull
	ForLoopDeclaration
	ScopeError
)

var parserKindNames = [...]string{
	EOFKind:            "EOF",
	UnexpectedToken:    "UnexpectedToken",
	ObjectKey:          "ObjectKey",
	MemberExpr:         "MemberExpr",
	PrimaryExpr:        "PrimaryExpr",
	ConstValueNull:     "ConstValueNull",
	ForLoopDeclaration: "ForLoopDeclaration",
	ScopeError:         "ScopeError",
}

func (k ParserErrorKind) String() string { return parserKindNames[k] }

// ParserError is a single parse failure with its source line.
type ParserError struct {
	Kind    ParserErrorKind
	Message string
	Line    int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.Line, e.Kind, e.Message)
}

// NewParserError constructs a ParserError.
func NewParserError(kind ParserErrorKind, line int, format string, args ...any) *ParserError {
	return &ParserError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// RuntimeErrorKind enumerates the closed set of evaluation-time
// failures.
type RuntimeErrorKind int

const (
	TypeMismatch RuntimeErrorKind = iota
	TypeCastingError
	InvalidArgumentCount
	ArrayIndexOutOfBounds
	InvalidArrayIndex
	InvalidMemberAccess
	UndefinedField
	UndefinedProperty
	EnvironmentErrorKind
	InvalidCall
	InternalError
)

var runtimeKindNames = [...]string{
	TypeMismatch:          "TypeMismatch",
	TypeCastingError:      "TypeCastingError",
	InvalidArgumentCount:  "InvalidArgumentCount",
	ArrayIndexOutOfBounds: "ArrayIndexOutOfBounds",
	InvalidArrayIndex:     "InvalidArrayIndex",
	InvalidMemberAccess:   "InvalidMemberAccess",
	UndefinedField:        "UndefinedField",
	UndefinedProperty:     "UndefinedProperty",
	EnvironmentErrorKind:  "EnvironmentError",
	InvalidCall:           "InvalidCall",
	InternalError:         "InternalError",
}

func (k RuntimeErrorKind) String() string { return runtimeKindNames[k] }

// RuntimeError is a single evaluation failure with its source line.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.Line, e.Kind, e.Message)
}

// NewRuntimeError constructs a RuntimeError.
func NewRuntimeError(kind RuntimeErrorKind, line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// EnvKind enumerates the internal environment failures, mapped to
// RuntimeError{Kind: EnvironmentErrorKind} at call sites.
type EnvKind int

const (
	ReDeclareVar EnvKind = iota
	ConstReassign
	VarNotDeclared
)

var envKindNames = [...]string{
	ReDeclareVar:   "ReDeclareVar",
	ConstReassign:  "ConstReassign",
	VarNotDeclared: "VarNotDeclared",
}

func (k EnvKind) String() string { return envKindNames[k] }

// EnvError is the internal error Environment operations return; callers
// convert it into a RuntimeError{Kind: EnvironmentErrorKind} carrying
// the call-site line.
type EnvError struct {
	Kind EnvKind
	Name string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Name)
}

// AsRuntimeError wraps an EnvError as a RuntimeError at the given line.
func AsRuntimeError(err *EnvError, line int) *RuntimeError {
	return NewRuntimeError(EnvironmentErrorKind, line, "%s", err.Error())
}

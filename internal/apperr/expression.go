package apperr

import (
	"errors"
	"fmt"
)

// Kind groups expression errors by the stage that detected them.
type Kind string

const (
	KindSyntax Kind = "syntax"
	KindParse  Kind = "parse"
	KindEval   Kind = "eval"
)

// Code identifies the specific reason an expression was rejected.
// Every expression error unwraps to its Code, so callers can use errors.Is.
type Code string

const (
	ErrUnbalancedParentheses Code = "unbalanced_parentheses"
	ErrUnknownSymbol         Code = "unknown_symbol"
	ErrInvalidNumber         Code = "invalid_number"
	ErrMalformedExpression   Code = "malformed_expression"
	ErrDivisionByZero        Code = "division_by_zero"
	ErrNoResult              Code = "evaluation_error"
	ErrOutOfRange            Code = "out_of_range"
)

func (c Code) Error() string {
	return string(c)
}

// ExpressionCodes lists every Code an expression error can carry.
func ExpressionCodes() []Code {
	return []Code{
		ErrUnbalancedParentheses,
		ErrUnknownSymbol,
		ErrInvalidNumber,
		ErrMalformedExpression,
		ErrDivisionByZero,
		ErrNoResult,
		ErrOutOfRange,
	}
}

// ExpressionError is implemented by SyntaxError, ParseError and EvalError.
type ExpressionError interface {
	error
	Kind() Kind
	ErrorCode() Code
}

// AsExpressionError finds the first ExpressionError in err's chain.
func AsExpressionError(err error) (ExpressionError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// SyntaxError reports a structural problem found while converting to postfix.
type SyntaxError struct {
	Code    Code
	Message string
	Symbol  rune
}

func (e *SyntaxError) Error() string   { return e.Message }
func (e *SyntaxError) Unwrap() error   { return e.Code }
func (e *SyntaxError) Kind() Kind      { return KindSyntax }
func (e *SyntaxError) ErrorCode() Code { return e.Code }

func NewUnbalancedParentheses() *SyntaxError {
	return &SyntaxError{Code: ErrUnbalancedParentheses, Message: "unbalanced parentheses"}
}

func NewUnknownSymbol(symbol rune) *SyntaxError {
	return &SyntaxError{
		Code:    ErrUnknownSymbol,
		Message: fmt.Sprintf("unknown symbol: %c", symbol),
		Symbol:  symbol,
	}
}

// ParseError reports a number literal that cannot be converted to float64.
type ParseError struct {
	Literal string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid number %q: %v", e.Literal, e.Err)
	}
	return fmt.Sprintf("invalid number %q", e.Literal)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidNumber, e.Err}
	}
	return []error{ErrInvalidNumber}
}

func (e *ParseError) Kind() Kind      { return KindParse }
func (e *ParseError) ErrorCode() Code { return ErrInvalidNumber }

func NewParse(literal string, err error) *ParseError {
	return &ParseError{Literal: literal, Err: err}
}

// EvalError reports a problem found while folding the postfix sequence.
type EvalError struct {
	Code    Code
	Message string
}

func (e *EvalError) Error() string   { return e.Message }
func (e *EvalError) Unwrap() error   { return e.Code }
func (e *EvalError) Kind() Kind      { return KindEval }
func (e *EvalError) ErrorCode() Code { return e.Code }

func NewMalformedExpression() *EvalError {
	return &EvalError{Code: ErrMalformedExpression, Message: "malformed expression"}
}

func NewDivisionByZero() *EvalError {
	return &EvalError{Code: ErrDivisionByZero, Message: "division by zero"}
}

func NewNoResult() *EvalError {
	return &EvalError{Code: ErrNoResult, Message: "evaluation error"}
}

func NewOutOfRange() *EvalError {
	return &EvalError{Code: ErrOutOfRange, Message: "result out of range"}
}

// File: accessor.go
// Title: Variable Accessors
// Description: The Accessor interface binding console variables to host
//              storage, plus built-in accessor families for Go's scalar
//              types with the command language's conversion rules.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

package registry

import (
	"fmt"
	"strconv"

	mconerror "github.com/msto63/mConsole/core/error"
)

// Accessor binds a console variable to host-owned storage. The console
// never holds values itself; every read and write goes through the
// accessor, so the host observes command-driven changes immediately.
//
// The three write entry points mirror how arguments arrive from the
// command language:
//
//   - Write receives either the accessor's Go value or string text. Text
//     is parsed with the storage type's natural parser; for string
//     storage it is assigned verbatim.
//   - WriteIntegerText receives base-10 integer text, including the
//     normalized boolean literals "1" and "0".
//   - WriteDecimalText receives decimal number text. Integer storage
//     truncates the value toward zero.
//
// Text that does not parse leaves the storage unchanged and returns an
// error carrying CodeInvalidValue; an unsupported Go type in Write
// returns CodeTypeMismatch.
//
// String renders the current value the way the console echoes it: "1"
// or "0" for booleans, shortest round-trip form for floats, verbatim
// for strings.
type Accessor interface {
	Read() any
	Write(value any) error
	WriteIntegerText(text string) error
	WriteDecimalText(text string) error
	String() string
}

// NewScalarAccessor builds an accessor over a pointer to one of Go's
// scalar types: string, bool, the signed and unsigned integers, or the
// floats. Other pointer types are rejected with CodeTypeMismatch; hosts
// with richer storage implement Accessor directly.
func NewScalarAccessor(target any) (Accessor, error) {
	switch t := target.(type) {
	case *string:
		return textVar{p: t}, nil
	case *bool:
		return boolVar{p: t}, nil
	case *int:
		return intVar[int]{p: t, bits: strconv.IntSize}, nil
	case *int8:
		return intVar[int8]{p: t, bits: 8}, nil
	case *int16:
		return intVar[int16]{p: t, bits: 16}, nil
	case *int32:
		return intVar[int32]{p: t, bits: 32}, nil
	case *int64:
		return intVar[int64]{p: t, bits: 64}, nil
	case *uint:
		return uintVar[uint]{p: t, bits: strconv.IntSize}, nil
	case *uint8:
		return uintVar[uint8]{p: t, bits: 8}, nil
	case *uint16:
		return uintVar[uint16]{p: t, bits: 16}, nil
	case *uint32:
		return uintVar[uint32]{p: t, bits: 32}, nil
	case *uint64:
		return uintVar[uint64]{p: t, bits: 64}, nil
	case *float32:
		return floatVar[float32]{p: t, bits: 32}, nil
	case *float64:
		return floatVar[float64]{p: t, bits: 64}, nil
	default:
		return nil, mconerror.New("unsupported variable storage type").
			WithCode(mconerror.CodeTypeMismatch).
			WithOperation("new-scalar-accessor").
			WithDetail("type", fmt.Sprintf("%T", target))
	}
}

type signedInteger interface {
	int | int8 | int16 | int32 | int64
}

type unsignedInteger interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type floatNumber interface {
	float32 | float64
}

// textVar binds string storage. All three text writers assign verbatim.
type textVar struct {
	p *string
}

func (v textVar) Read() any { return *v.p }

func (v textVar) Write(value any) error {
	s, ok := value.(string)
	if !ok {
		return errWriteType("string", value)
	}
	*v.p = s
	return nil
}

func (v textVar) WriteIntegerText(text string) error {
	*v.p = text
	return nil
}

func (v textVar) WriteDecimalText(text string) error {
	*v.p = text
	return nil
}

func (v textVar) String() string { return *v.p }

// boolVar binds bool storage. Numeric text maps to true for any
// non-zero value.
type boolVar struct {
	p *bool
}

func (v boolVar) Read() any { return *v.p }

func (v boolVar) Write(value any) error {
	switch t := value.(type) {
	case bool:
		*v.p = t
		return nil
	case string:
		return v.WriteIntegerText(t)
	default:
		return errWriteType("bool", value)
	}
}

func (v boolVar) WriteIntegerText(text string) error {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return errWriteParse(text, "bool", err)
	}
	*v.p = n != 0
	return nil
}

func (v boolVar) WriteDecimalText(text string) error {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errWriteParse(text, "bool", err)
	}
	*v.p = f != 0
	return nil
}

func (v boolVar) String() string {
	if *v.p {
		return "1"
	}
	return "0"
}

// intVar binds signed integer storage of any width.
type intVar[T signedInteger] struct {
	p    *T
	bits int
}

func (v intVar[T]) Read() any { return *v.p }

func (v intVar[T]) Write(value any) error {
	switch t := value.(type) {
	case T:
		*v.p = t
		return nil
	case string:
		return v.WriteIntegerText(t)
	default:
		return errWriteType(fmt.Sprintf("%T", *v.p), value)
	}
}

func (v intVar[T]) WriteIntegerText(text string) error {
	n, err := strconv.ParseInt(text, 10, v.bits)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	*v.p = T(n)
	return nil
}

func (v intVar[T]) WriteDecimalText(text string) error {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	*v.p = T(f) // truncates toward zero
	return nil
}

func (v intVar[T]) String() string {
	return strconv.FormatInt(int64(*v.p), 10)
}

// uintVar binds unsigned integer storage of any width.
type uintVar[T unsignedInteger] struct {
	p    *T
	bits int
}

func (v uintVar[T]) Read() any { return *v.p }

func (v uintVar[T]) Write(value any) error {
	switch t := value.(type) {
	case T:
		*v.p = t
		return nil
	case string:
		return v.WriteIntegerText(t)
	default:
		return errWriteType(fmt.Sprintf("%T", *v.p), value)
	}
}

func (v uintVar[T]) WriteIntegerText(text string) error {
	n, err := strconv.ParseUint(text, 10, v.bits)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	*v.p = T(n)
	return nil
}

func (v uintVar[T]) WriteDecimalText(text string) error {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	if f < 0 {
		return mconerror.New("negative value for unsigned variable").
			WithCode(mconerror.CodeInvalidValue).
			WithDetail("text", text)
	}
	*v.p = T(f) // truncates toward zero
	return nil
}

func (v uintVar[T]) String() string {
	return strconv.FormatUint(uint64(*v.p), 10)
}

// floatVar binds float storage.
type floatVar[T floatNumber] struct {
	p    *T
	bits int
}

func (v floatVar[T]) Read() any { return *v.p }

func (v floatVar[T]) Write(value any) error {
	switch t := value.(type) {
	case T:
		*v.p = t
		return nil
	case string:
		return v.WriteDecimalText(t)
	default:
		return errWriteType(fmt.Sprintf("%T", *v.p), value)
	}
}

func (v floatVar[T]) WriteIntegerText(text string) error {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	*v.p = T(n)
	return nil
}

func (v floatVar[T]) WriteDecimalText(text string) error {
	f, err := strconv.ParseFloat(text, v.bits)
	if err != nil {
		return errWriteParse(text, fmt.Sprintf("%T", *v.p), err)
	}
	*v.p = T(f)
	return nil
}

func (v floatVar[T]) String() string {
	return strconv.FormatFloat(float64(*v.p), 'g', -1, v.bits)
}

func errWriteParse(text, as string, cause error) error {
	return mconerror.Wrap(cause, "cannot convert value for variable write").
		WithCode(mconerror.CodeInvalidValue).
		WithDetail("text", text).
		WithDetail("as", as)
}

func errWriteType(want string, got any) error {
	return mconerror.New("unsupported value type for variable write").
		WithCode(mconerror.CodeTypeMismatch).
		WithDetail("want", want).
		WithDetail("got", fmt.Sprintf("%T", got))
}

package query

import (
	"fmt"
	"time"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a typed query parameter. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  int64
	unum uint64
	flt  float64
	flag bool
	at   time.Time
}

func Null() Value { return Value{} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func Int(i int64) Value { return Value{kind: KindInt, num: i} }
func Uint(u uint64) Value { return Value{kind: KindUint, unum: u} }
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }
func Time(t time.Time) Value { return Value{kind: KindTime, at: t} }
func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) String() string { return fmt.Sprintf("%v", v.Any()) }

// Any returns the value in the form handed to the database driver.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindUint:
		return v.unum
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindTime:
		return v.at
	}
	return nil
}

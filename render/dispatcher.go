package render

import (
	"interp/primitive"
)

type RoutineEnum int

const (
	RoutineUnknown RoutineEnum = iota
	RoutinePointer
	RoutineText
	RoutineUnsigned
	RoutineSigned
	RoutineChar
	RoutineFloat
	RoutineBool

	// RoutineTotal is a constant that represents the total number of routines defined
	RoutineTotal = int(iota)
)

// Dispatch selects the rendering routine of a captured kind. The capture category decides
// first, so routines keep the capture priority; the zero kind has no routine.
func Dispatch(kind primitive.KindEnum) RoutineEnum {
	switch kind.Category() {
	case primitive.CategoryPointer:
		return RoutinePointer
	case primitive.CategoryStringLike, primitive.CategoryTextPointer, primitive.CategoryUserDefined:
		return RoutineText
	case primitive.CategoryArithmetic:
		switch {
		case kind.IsUnsigned():
			return RoutineUnsigned
		case kind.IsSigned():
			return RoutineSigned
		case kind.IsFloat():
			return RoutineFloat
		case kind == primitive.KindChar:
			return RoutineChar
		case kind == primitive.KindBool:
			return RoutineBool
		}
	}

	return RoutineUnknown
}

// UsesWidth reports whether the routine honours the width of a spec.
func (r RoutineEnum) UsesWidth() bool {
	switch r {
	case RoutinePointer, RoutineUnsigned, RoutineSigned, RoutineFloat:
		return true
	default:
		return false
	}
}

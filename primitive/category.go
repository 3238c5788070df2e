package primitive

type CategoryEnum int

// Capture categories in priority order. An argument is classified into exactly one.
const (
	CategoryStringLike  CategoryEnum = 1 << iota // string, []unit: insert referenced text
	CategoryTextPointer                          // *string, *[]unit, *unit, *Char: insert pointee text
	CategoryPointer                              // any other pointer: hexadecimal address
	CategoryArithmetic                           // integers, floats, bool and Char: numeric or literal rendering
	CategoryUserDefined                          // types with a text convention: converted text

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no category, the argument cannot be rendered
)

var categories map[KindEnum]CategoryEnum

func init() {
	categories = map[KindEnum]CategoryEnum{
		KindUnits:       CategoryStringLike,
		KindString:      CategoryStringLike,
		KindTextPointer: CategoryTextPointer,
		KindPointer:     CategoryPointer,
		KindChar:        CategoryArithmetic,
		KindBool:        CategoryArithmetic,
		KindText:        CategoryUserDefined,
	}

	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		if kind.IsNumber() {
			categories[kind] = CategoryArithmetic
		}
	}
}

// Category returns the capture category of k, CategoryNone for the zero kind.
func (k KindEnum) Category() CategoryEnum {
	return categories[k]
}

// Has reports whether c includes every category of other.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return other != CategoryNone && c&other == other
}

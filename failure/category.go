package failure

// Category is the closed classification of engine failures.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CATEGORY_SYNTAX   = Category(1) // SyntaxError
	CATEGORY_EVAL     = Category(2) // EvalError
	CATEGORY_RESOLVE  = Category(3) // ResolveError
	CATEGORY_INTERNAL = Category(4) // InternalError
)

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool {
	return c >= CATEGORY_SYNTAX && c <= CATEGORY_INTERNAL
}

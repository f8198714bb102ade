// Package bridge turns captured Starlark failures into host exceptions.
//
// Every failure becomes exactly one exception of a concrete kind:
// *SyntaxError, *EvalError, *ResolveError or *InternalError. All kinds share
// the same read-only attribute set and render through Error() as
//
//	{filename} in {function_name}:{line}:{column}: {error}
//
// Missing data substitutes "" for strings and 0 for integers; the format is
// never altered. A failure that breaks the engine contract is not turned into
// an exception but reported as *ErrInvariant.
package bridge

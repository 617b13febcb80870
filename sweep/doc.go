// Package sweep provides the structural guard separating combinatorial
// configuration containers from plain scalar configuration.
//
// A combinatorial object is a mapping or a record instance whose every
// field holds an expandable collection of candidate values. Strings are
// atomic scalars here: they never count as expandable even though Go can
// range over them.
package sweep

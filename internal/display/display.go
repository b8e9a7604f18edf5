// Package display owns the presentation vocabulary of the app's domain enums:
// canonical wire values, human-readable descriptions, icon identifiers, and
// the theme tokens their colors resolve through.
//
// Every mapper is total over the declared variants. An out-of-set value (a
// cast from an unvalidated string) returns ErrUnmappedVariant rather than a
// silent default; the All* slices let tests prove no variant is missing.
package display

import "errors"

// ErrUnmappedVariant is returned by a mapper given a value outside the
// declared variant set.
var ErrUnmappedVariant = errors.New("unmapped enum variant")

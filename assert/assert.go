package assert

import "github.com/oomph-ac/kinetic/oerror"

// IsTrue panics with a formatted error if ok is false. It is reserved for invariants whose violation
// means the caller has a bug, never for bad world data.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

//go:build !release
// +build !release

package debug

import _ "unsafe"

//go:linkname throw runtime.throw
func throw(string)

// Assert aborts the process if fn reports false. It is compiled out of
// release builds, so fn must not have side effects.
func Assert(info string, fn func() bool) {
	if !fn() {
		throw("assertion failed: " + info)
	}
}

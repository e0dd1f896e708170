//go:build fugudebug

package puzzle

import "fmt"

const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("puzzle: invariant violated: " + fmt.Sprintf(format, args...))
	}
}

//go:build !fugudebug

package puzzle

const debugAssertions = false

func assertf(bool, string, ...any) {}

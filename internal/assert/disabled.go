//go:build gridrelease

package assert

const enabled = false

//go:build assertions_disabled

package assert

// True is a no-op when assertions are disabled.
func True(bool, ...any) {}

// False is a no-op when assertions are disabled.
func False(bool, ...any) {}

//go:build windows

package environment

// Windows consoles do not deliver resize signals; the width is read on each
// registration only.
func watchResize(func()) (func(), error) {
	return func() {}, nil
}

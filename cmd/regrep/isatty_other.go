//go:build !linux

package main

import "os"

// isTerminal always reports false on platforms without a dedicated
// ioctl-based check wired up; output is simply never colorized there.
func isTerminal(f *os.File) bool {
	return false
}

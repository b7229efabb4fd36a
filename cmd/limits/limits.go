//go:build linux || darwin

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Prints the soft resource limits the word counter runs under.

func main() {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err == nil {
		fmt.Printf("stack size: %d\n", lim.Cur)
	}
	if err := unix.Getrlimit(unix.RLIMIT_NPROC, &lim); err == nil {
		fmt.Printf("process limit: %d\n", lim.Cur)
	}
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err == nil {
		fmt.Printf("max file descriptors: %d\n", lim.Cur)
	}
}

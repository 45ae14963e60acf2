//go:build !linux

package program

// relaunchIfPID1 is only needed on Linux, where the program may run as
// the init process of a container.
func relaunchIfPID1(currentPID int) {}

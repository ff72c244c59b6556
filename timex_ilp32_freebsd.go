//go:build 386 || arm

package freebsd

import "golang.org/x/sys/unix"

// ntptimeval mirrors struct ntptimeval from sys/timex.h on ABIs where
// C long is 32 bits wide. The Timespec field absorbs the time_t width
// difference between 386 and arm.
type ntptimeval struct {
	Time      unix.Timespec
	Maxerror  int32
	Esterror  int32
	Tai       int32
	TimeState int32
}

//go:build amd64 || arm64 || riscv64

package freebsd

import "golang.org/x/sys/unix"

// ntptimeval mirrors struct ntptimeval from sys/timex.h on ABIs where
// C long is 64 bits wide.
type ntptimeval struct {
	Time      unix.Timespec
	Maxerror  int64
	Esterror  int64
	Tai       int64
	TimeState int32
	_         [4]byte
}

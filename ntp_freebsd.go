package freebsd

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// NtpTimeval is the kernel clock state reported by [NtpGettime]. It
// mirrors struct ntptimeval from sys/timex.h, with the long-width
// fields widened to a stable size across ABIs.
type NtpTimeval struct {
	Time     unix.Timespec // current kernel time
	MaxError int64         // maximum error bound, microseconds
	EstError int64         // estimated error, microseconds
	TAI      int64         // TAI minus UTC offset, seconds
	State    TimeState     // clock discipline state
}

// NtpGettime queries the kernel NTP clock discipline via
// ntp_gettime(2). The record carries the current time, the error
// bounds, the TAI offset, and the discipline state; the system call's
// return value duplicates the state field and is discarded. Failure is
// rare and typically means the kernel does not support the call; the
// errno arrives wrapped in an *os.SyscallError.
func NtpGettime() (NtpTimeval, error) {
	var raw ntptimeval
	_, _, errno := unix.Syscall(unix.SYS_NTP_GETTIME, uintptr(unsafe.Pointer(&raw)), 0, 0)
	if errno != 0 {
		return NtpTimeval{}, os.NewSyscallError("ntp_gettime", errno)
	}
	return NtpTimeval{
		Time:     raw.Time,
		MaxError: int64(raw.Maxerror),
		EstError: int64(raw.Esterror),
		TAI:      int64(raw.Tai),
		State:    TimeState(raw.TimeState),
	}, nil
}

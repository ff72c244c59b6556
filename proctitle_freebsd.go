package freebsd

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// Process-argument identifiers from sys/sysctl.h.
const (
	ctlKern      = 1  // CTL_KERN
	kernProc     = 14 // KERN_PROC
	kernProcArgs = 7  // KERN_PROC_ARGS
)

// SetProctitle replaces the process title shown by ps(1) and top(1) by
// writing a new argument vector to the running process's kern.proc.args
// node, the same system call FreeBSD libc issues for setproctitle(3)
// with a leading-dash format. The title is displayed verbatim, with no
// program-name prefix.
//
// The effect is process-wide and persists until the next call or
// process exit. An empty title clears the displayed arguments. Titles
// longer than the kernel's kern.ps_arg_cache_limit are rejected by the
// kernel, and the errno surfaces in the returned [SysctlError].
func SetProctitle(title string) error {
	pid := unix.Getpid()
	mib := Mib{ctlKern, kernProc, kernProcArgs, int32(pid)}
	node := "kern.proc.args." + strconv.Itoa(pid)

	buf, err := unix.ByteSliceFromString(title)
	if err != nil {
		// Embedded NUL would truncate the title at the kernel boundary.
		return &SysctlError{Name: node, Mib: mib, Errno: unix.EINVAL}
	}
	if errno := sysctl(mib, nil, nil, &buf[0], uintptr(len(buf))); errno != 0 {
		return &SysctlError{Name: node, Mib: mib, Errno: errno}
	}
	return nil
}

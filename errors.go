package freebsd

import "syscall"

// ResolutionError is returned when a dotted sysctl name cannot be
// translated to a numeric MIB vector.
//
// Errno holds the error number reported by the operating system,
// typically ENOENT for names that do not exist in the sysctl tree.
type ResolutionError struct {
	// Name is the dotted name that failed to resolve.
	Name string
	// Errno is the OS error number, preserved verbatim.
	Errno syscall.Errno
}

func (e *ResolutionError) Error() string {
	return "freebsd: resolve " + e.Name + ": " + e.Errno.Error()
}

// Unwrap returns the underlying errno so callers can match with
// errors.Is(err, unix.ENOENT) and friends.
func (e *ResolutionError) Unwrap() error { return e.Errno }

// SysctlError is returned when a sysctl read or write fails in either
// the size-query phase or the data phase.
//
// Errno is preserved verbatim for caller diagnosis. A value that grew
// between the two phases surfaces here as ENOMEM; the caller decides
// whether to retry.
type SysctlError struct {
	// Name is the dotted name of the node, when the operation started
	// from one. Empty for direct by-MIB access.
	Name string
	// Mib is the numeric vector the operation used.
	Mib Mib
	// Errno is the OS error number, preserved verbatim.
	Errno syscall.Errno
}

func (e *SysctlError) Error() string {
	target := e.Name
	if target == "" {
		target = e.Mib.String()
	}
	if target == "" {
		return "freebsd: sysctl: " + e.Errno.Error()
	}
	return "freebsd: sysctl " + target + ": " + e.Errno.Error()
}

// Unwrap returns the underlying errno so callers can match with
// errors.Is(err, unix.ENOMEM) and friends.
func (e *SysctlError) Unwrap() error { return e.Errno }

// DecodeError is returned when a raw sysctl value cannot be decoded as
// the requested type, for example non-UTF-8 data decoded as a string or
// an integer wider than 8 bytes.
type DecodeError struct {
	// Reason describes what made the value undecodable.
	Reason string
}

func (e *DecodeError) Error() string {
	return "freebsd: decode: " + e.Reason
}

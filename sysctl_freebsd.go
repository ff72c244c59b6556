package freebsd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Top-level identifiers from sys/sysctl.h. The {CTL_SYSCTL,
// CTL_SYSCTL_NAME2OID} pair is the magic MIB that asks the sysctl tree
// itself to translate a dotted name into its numeric OID, the same
// mechanism sysctlnametomib(3) uses.
const (
	ctlSysctl         = 0 // CTL_SYSCTL
	ctlSysctlName2OID = 3 // CTL_SYSCTL_NAME2OID
)

var _zero uintptr

// sysctl is the raw __sysctl(2) invocation. A nil old with a non-nil
// oldlen performs a size query; a non-nil new performs a write. The
// returned errno is zero on success.
func sysctl(mib Mib, old *byte, oldlen *uintptr, new *byte, newlen uintptr) syscall.Errno {
	var p unsafe.Pointer
	if len(mib) > 0 {
		p = unsafe.Pointer(&mib[0])
	} else {
		p = unsafe.Pointer(&_zero)
	}
	_, _, errno := unix.Syscall6(unix.SYS___SYSCTL,
		uintptr(p), uintptr(len(mib)),
		uintptr(unsafe.Pointer(old)), uintptr(unsafe.Pointer(oldlen)),
		uintptr(unsafe.Pointer(new)), newlen)
	return errno
}

// ResolveMib translates a dotted sysctl name such as "kern.ostype" into
// the kernel's numeric MIB vector. The vector is sized from the name
// itself, one component per dot-separated segment. Unknown names
// surface as a [ResolutionError] carrying the kernel's errno.
//
// Resolution costs a system call, so callers reading the same node
// repeatedly should resolve once and reuse the Mib with [Sysctl].
func ResolveMib(name string) (Mib, error) {
	q, err := unix.ByteSliceFromString(name)
	if err != nil {
		// Embedded NUL: the kernel would see a truncated name.
		return nil, &ResolutionError{Name: name, Errno: unix.EINVAL}
	}
	mib := make(Mib, strings.Count(name, ".")+1)
	const siz = unsafe.Sizeof(mib[0])
	n := uintptr(len(mib)) * siz
	errno := sysctl(Mib{ctlSysctl, ctlSysctlName2OID},
		(*byte)(unsafe.Pointer(&mib[0])), &n, &q[0], uintptr(len(name)))
	if errno != 0 {
		return nil, &ResolutionError{Name: name, Errno: errno}
	}
	return mib[:n/siz], nil
}

// Sysctl reads the node identified by mib using the two-phase protocol:
// a nil-buffer size query, then a fetch into a buffer of exactly the
// reported size. It returns the bytes the kernel wrote, which can be
// fewer than the query reported when the value shrank in between; a
// value that grew instead makes the fetch fail with ENOMEM inside a
// [SysctlError], and the caller decides whether to retry. A node whose
// current value is empty yields a nil slice and nil error.
func Sysctl(mib Mib) ([]byte, error) {
	if len(mib) == 0 {
		return nil, &SysctlError{Mib: mib, Errno: unix.EINVAL}
	}
	return readMib("", mib)
}

// SysctlByName reads the node identified by a dotted name, composing
// [ResolveMib] and [Sysctl] in one call.
func SysctlByName(name string) ([]byte, error) {
	mib, err := ResolveMib(name)
	if err != nil {
		return nil, err
	}
	return readMib(name, mib)
}

// MustSysctlByName is like [SysctlByName] but panics on error. Intended
// for init-time reads of nodes present on every supported kernel, such
// as kern.ostype.
func MustSysctlByName(name string) []byte {
	data, err := SysctlByName(name)
	if err != nil {
		panic(err)
	}
	return data
}

// readMib performs the two-phase read. name is carried for error
// context only and may be empty.
func readMib(name string, mib Mib) ([]byte, error) {
	// Query phase: kernel reports the required size.
	var n uintptr
	if errno := sysctl(mib, nil, &n, nil, 0); errno != 0 {
		return nil, &SysctlError{Name: name, Mib: mib, Errno: errno}
	}
	if n == 0 {
		return nil, nil
	}

	// Fetch phase: a buffer of exactly that size. The kernel may write
	// less than it reported if the value shrank between the two calls.
	buf := make([]byte, n)
	if errno := sysctl(mib, &buf[0], &n, nil, 0); errno != 0 {
		return nil, &SysctlError{Name: name, Mib: mib, Errno: errno}
	}
	return buf[:n], nil
}

// SysctlString reads name and decodes the value as NUL-terminated
// UTF-8 text.
func SysctlString(name string) (string, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return "", err
	}
	return ToString(data)
}

// SysctlUint32 reads name and decodes the value as a 32-bit integer,
// the width of the kernel's plain int nodes. Values of any other width
// fail with a [DecodeError].
func SysctlUint32(name string) (uint32, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return 0, err
	}
	if len(data) != 4 {
		return 0, &DecodeError{Reason: fmt.Sprintf("%s: expected 4 bytes, got %d", name, len(data))}
	}
	v, _ := ToUint64(data)
	return uint32(v), nil
}

// SysctlUint64 reads name and decodes the value as a 64-bit integer,
// the width of the kernel's quad and long nodes. Values of any other
// width fail with a [DecodeError].
func SysctlUint64(name string) (uint64, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return 0, err
	}
	if len(data) != 8 {
		return 0, &DecodeError{Reason: fmt.Sprintf("%s: expected 8 bytes, got %d", name, len(data))}
	}
	return ToUint64(data)
}

// SysctlDegC reads a temperature node such as
// hw.acpi.thermal.tz0.temperature and converts the value to degrees
// Celsius.
func SysctlDegC(name string) (float64, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return 0, err
	}
	return ToDegC(data)
}

// SysctlTimeval reads a timeval-shaped node such as kern.boottime.
func SysctlTimeval(name string) (unix.Timeval, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return unix.Timeval{}, err
	}
	var tv unix.Timeval
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &tv); err != nil {
		return unix.Timeval{}, &DecodeError{Reason: fmt.Sprintf("%s: %v", name, err)}
	}
	return tv, nil
}

// SysctlValue reads name and decodes the value with the selected
// [Decoder]. With DecoderAuto this is the entry point for exploratory
// reads where the node's type is not known in advance.
func SysctlValue(name string, dec Decoder) (Value, error) {
	data, err := SysctlByName(name)
	if err != nil {
		return Value{}, err
	}
	return Decode(data, dec)
}

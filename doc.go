// Package freebsd provides direct Go bindings for FreeBSD kernel facilities.
//
// freebsd exposes the sysctl management interface, process-title mutation,
// and NTP clock-state queries. Every operation marshals its arguments into
// the kernel's native binary layout, issues a single system call through
// golang.org/x/sys/unix, checks the returned errno, and optionally decodes
// the result into a typed value. There is no cgo and no libc in the call
// path.
//
// # Quick Start
//
// Reading a node by its dotted name is one call:
//
//	ostype, err := freebsd.SysctlString("kern.ostype")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ostype) // "FreeBSD"
//
// Repeated reads of the same node should resolve the name once and reuse
// the numeric vector:
//
//	mib, err := freebsd.ResolveMib("kern.osrevision")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	raw, err := freebsd.Sysctl(mib)
//
// # Reading Sysctl Nodes
//
// Several read entry points are available:
//
//   - [Sysctl] reads raw bytes by numeric MIB vector
//   - [SysctlByName] reads raw bytes by dotted name
//   - [SysctlString], [SysctlUint32], [SysctlUint64], [SysctlDegC],
//     [SysctlTimeval] read by name and decode to a fixed type
//   - [SysctlValue] reads by name and decodes with a chosen [Decoder]
//   - [MustSysctlByName] panics on error, for init-time reads of nodes
//     present on every supported kernel
//
// Raw reads follow the two-phase sysctl protocol: a size query with a nil
// buffer, then a fetch into a buffer of exactly the reported size. A value
// that grows between the phases fails with ENOMEM; the caller decides
// whether to retry.
//
// # Decoding
//
// The decode layer is pure and carries no build constraint, so it compiles
// and tests on any platform:
//
//   - [ToUint64] decodes a little-endian unsigned integer
//   - [ToDegC] converts a kernel temperature to degrees Celsius
//   - [ToString] strips trailing NULs and validates UTF-8
//   - [AutoDecode] guesses among the above from the buffer shape
//   - [Decode] dispatches on an explicit [Decoder]
//
// AutoDecode's integer rule fires on any 4- or 8-byte buffer and therefore
// misclassifies fixed-size binary structures of those widths. It is a
// convenience for exploratory reads, not a substitute for knowing a node's
// type.
//
// # Concurrency
//
// Every function in this package is safe to call from any number of
// goroutines concurrently. No state is shared between calls; each read
// allocates its own buffer, and the kernel serializes access to its own
// sysctl tree. Calls block the calling goroutine only for the duration of
// the underlying system call.
//
// # Error Handling
//
// Failures surface immediately as one of three typed errors:
// [ResolutionError] for name-to-MIB translation, [SysctlError] for read or
// write failures, and [DecodeError] for values that do not fit the
// requested decoding. The first two wrap the kernel's errno, so sentinel
// tests compose with the standard library:
//
//	_, err := freebsd.SysctlByName("kern.does.not.exist")
//	if errors.Is(err, unix.ENOENT) {
//	    // node absent on this kernel
//	}
//
// Nothing is retried or suppressed inside the package.
package freebsd

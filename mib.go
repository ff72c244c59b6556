package freebsd

import (
	"strconv"
	"strings"
)

// Mib is a numeric management-information-base vector identifying a node
// in the kernel sysctl tree, for example {1, 1} for kern.ostype.
//
// A Mib is immutable once resolved; reusing one across many reads avoids
// repeated name resolution. Components are C ints, matching the kernel's
// view of the vector.
type Mib []int32

// String returns the dotted numeric form, for example "1.14.7".
func (m Mib) String() string {
	var b strings.Builder
	for i, id := range m {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return b.String()
}

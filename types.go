package freebsd

// Decoder selects how a raw sysctl value is decoded.
//
// This is a closed set rather than a caller-supplied function so the
// decode contract stays statically checkable.
type Decoder uint8

const (
	DecoderNone   Decoder = 0 // raw bytes, unchanged
	DecoderInt    Decoder = 1 // little-endian unsigned integer
	DecoderTemp   Decoder = 2 // kernel temperature to degrees Celsius
	DecoderString Decoder = 3 // NUL-terminated UTF-8 text
	DecoderAuto   Decoder = 4 // best-effort detection, see AutoDecode
)

func (d Decoder) String() string {
	switch d {
	case DecoderNone:
		return "none"
	case DecoderInt:
		return "int"
	case DecoderTemp:
		return "temp"
	case DecoderString:
		return "string"
	case DecoderAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ValueKind identifies which field of a Value carries the decoded data.
type ValueKind uint8

const (
	KindBytes  ValueKind = 0 // Value.Bytes
	KindUint   ValueKind = 1 // Value.Uint
	KindTemp   ValueKind = 2 // Value.Temp
	KindString ValueKind = 3 // Value.Str
)

func (k ValueKind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindUint:
		return "uint"
	case KindTemp:
		return "temp"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// TimeState is the kernel clock discipline state reported by
// ntp_gettime(2). Values mirror the TIME_* constants in sys/timex.h.
type TimeState int32

const (
	TimeOK    TimeState = 0 // synchronized, no leap second pending
	TimeIns   TimeState = 1 // leap second insertion pending
	TimeDel   TimeState = 2 // leap second deletion pending
	TimeOOP   TimeState = 3 // leap second in progress
	TimeWait  TimeState = 4 // leap second has occurred
	TimeError TimeState = 5 // clock not synchronized
)

func (s TimeState) String() string {
	switch s {
	case TimeOK:
		return "ok"
	case TimeIns:
		return "insert-leap-second"
	case TimeDel:
		return "delete-leap-second"
	case TimeOOP:
		return "out-of-phase"
	case TimeWait:
		return "awaiting-leap-second"
	case TimeError:
		return "error"
	default:
		return "unknown"
	}
}

// Synchronized reports whether the kernel considers the clock
// synchronized to its time source. The leap-second states describe a
// pending or in-progress adjustment, not a loss of synchronization, so
// every state except TimeError counts as synchronized.
func (s TimeState) Synchronized() bool {
	return s >= TimeOK && s < TimeError
}

package freebsd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestResolveMibLength(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"kern", 1},
		{"kern.ostype", 2},
		{"kern.ipc.maxsockbuf", 3},
		{"net.inet.tcp.mssdflt", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mib, err := ResolveMib(tt.name)
			if err != nil {
				t.Fatalf("ResolveMib(%q) error: %v", tt.name, err)
			}
			if len(mib) != tt.want {
				t.Errorf("len(mib) = %d, want %d", len(mib), tt.want)
			}
			t.Logf("%s = %s", tt.name, mib)
		})
	}
}

func TestResolveMibKnownVector(t *testing.T) {
	mib, err := ResolveMib("kern.ostype")
	if err != nil {
		t.Fatalf("ResolveMib error: %v", err)
	}
	// CTL_KERN and KERN_OSTYPE are pinned by sys/sysctl.h.
	if len(mib) != 2 || mib[0] != 1 || mib[1] != 1 {
		t.Errorf("kern.ostype = %s, want 1.1", mib)
	}
}

func TestResolveMibUnknownName(t *testing.T) {
	_, err := ResolveMib("kern.no.such.node.here")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("errno = %v, want ENOENT", re.Errno)
	}
}

func TestResolveMibEmptyName(t *testing.T) {
	_, err := ResolveMib("")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
}

func TestResolveMibEmbeddedNUL(t *testing.T) {
	_, err := ResolveMib("kern\x00ostype")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	if !errors.Is(err, unix.EINVAL) {
		t.Errorf("errno = %v, want EINVAL", re.Errno)
	}
}

func TestSysctlEmptyMib(t *testing.T) {
	_, err := Sysctl(nil)
	var se *SysctlError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SysctlError", err)
	}
	if !errors.Is(err, unix.EINVAL) {
		t.Errorf("errno = %v, want EINVAL", se.Errno)
	}
}

func TestSysctlByNameOstype(t *testing.T) {
	data, err := SysctlByName("kern.ostype")
	if err != nil {
		t.Fatalf("SysctlByName error: %v", err)
	}
	s, err := ToString(data)
	if err != nil {
		t.Fatalf("ToString error: %v", err)
	}
	if s != "FreeBSD" {
		t.Errorf("kern.ostype = %q, want %q", s, "FreeBSD")
	}
}

func TestSysctlByMibAgreesWithByName(t *testing.T) {
	mib, err := ResolveMib("kern.ostype")
	if err != nil {
		t.Fatalf("ResolveMib error: %v", err)
	}
	byMib, err := Sysctl(mib)
	if err != nil {
		t.Fatalf("Sysctl error: %v", err)
	}
	byName, err := SysctlByName("kern.ostype")
	if err != nil {
		t.Fatalf("SysctlByName error: %v", err)
	}
	if !bytes.Equal(byMib, byName) {
		t.Errorf("by-MIB read %q differs from by-name read %q", byMib, byName)
	}
}

func TestSysctlUnknownMib(t *testing.T) {
	_, err := Sysctl(Mib{1, 99999})
	var se *SysctlError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SysctlError", err)
	}
	t.Logf("bogus mib rejected: %v", err)
}

func TestSysctlString(t *testing.T) {
	s, err := SysctlString("kern.ostype")
	if err != nil {
		t.Fatalf("SysctlString error: %v", err)
	}
	if s != "FreeBSD" {
		t.Errorf("kern.ostype = %q, want %q", s, "FreeBSD")
	}
}

func TestSysctlUint32Osrevision(t *testing.T) {
	v, err := SysctlUint32("kern.osrevision")
	if err != nil {
		t.Fatalf("SysctlUint32 error: %v", err)
	}
	if v == 0 {
		t.Error("kern.osrevision = 0, want positive")
	}
	t.Logf("kern.osrevision = %d", v)
}

func TestSysctlUint32WrongWidth(t *testing.T) {
	// kern.ostype is text, not a 4-byte integer.
	_, err := SysctlUint32("kern.ostype")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}

func TestSysctlPhysmem(t *testing.T) {
	// hw.physmem is a C long, so its width follows the ABI.
	data, err := SysctlByName("hw.physmem")
	if err != nil {
		t.Fatalf("SysctlByName error: %v", err)
	}
	switch len(data) {
	case 8:
		v, err := SysctlUint64("hw.physmem")
		if err != nil {
			t.Fatalf("SysctlUint64 error: %v", err)
		}
		if v == 0 {
			t.Error("hw.physmem = 0, want positive")
		}
	case 4:
		v, err := SysctlUint32("hw.physmem")
		if err != nil {
			t.Fatalf("SysctlUint32 error: %v", err)
		}
		if v == 0 {
			t.Error("hw.physmem = 0, want positive")
		}
	default:
		t.Errorf("hw.physmem is %d bytes, want 4 or 8", len(data))
	}
}

func TestSysctlDegC(t *testing.T) {
	c, err := SysctlDegC("hw.acpi.thermal.tz0.temperature")
	if err != nil {
		// Thermal zones exist only on ACPI hardware.
		var re *ResolutionError
		if errors.As(err, &re) {
			t.Skipf("no thermal zone on this machine: %v", err)
		}
		t.Fatalf("SysctlDegC error: %v", err)
	}
	if c < -50 || c > 150 {
		t.Errorf("tz0 temperature = %v degC, outside plausible range", c)
	}
	t.Logf("tz0 temperature = %v degC", c)
}

func TestSysctlTimevalBoottime(t *testing.T) {
	tv, err := SysctlTimeval("kern.boottime")
	if err != nil {
		t.Fatalf("SysctlTimeval error: %v", err)
	}
	sec := int64(tv.Sec)
	if sec <= 0 {
		t.Errorf("kern.boottime sec = %d, want positive", sec)
	}
	if now := time.Now().Unix(); sec > now {
		t.Errorf("kern.boottime sec = %d is in the future (now %d)", sec, now)
	}
}

func TestSysctlValueAuto(t *testing.T) {
	v, err := SysctlValue("kern.ostype", DecoderAuto)
	if err != nil {
		t.Fatalf("SysctlValue error: %v", err)
	}
	// "FreeBSD\x00" is 8 bytes, so the auto heuristic sees an integer.
	// This is the documented misclassification; an explicit decoder
	// reads it as text.
	if v.Kind != KindUint {
		t.Errorf("auto kind = %v, want %v", v.Kind, KindUint)
	}

	v, err = SysctlValue("kern.ostype", DecoderString)
	if err != nil {
		t.Fatalf("SysctlValue error: %v", err)
	}
	if v.Kind != KindString || v.Str != "FreeBSD" {
		t.Errorf("string decode = %+v, want FreeBSD", v)
	}
}

func TestMustSysctlByName(t *testing.T) {
	data := MustSysctlByName("kern.ostype")
	if len(data) == 0 {
		t.Error("MustSysctlByName returned empty value")
	}
}

func TestMustSysctlByNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSysctlByName on unknown name did not panic")
		}
	}()
	MustSysctlByName("kern.no.such.node.here")
}

package platform

import "runtime"

// Family groups operating systems by the object format they default to.
type Family int

const (
	Unknown Family = iota
	Posix
	Windows
)

func (f Family) String() string {
	switch f {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// FamilyOf classifies a GOOS value.
func FamilyOf(goos string) Family {
	switch goos {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly",
		"solaris", "illumos", "aix", "android", "ios", "hurd":
		return Posix
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// Is64Bit reports whether arch names a 64-bit machine. Both GOARCH values
// and the uname-style labels are accepted.
func Is64Bit(arch string) bool {
	switch arch {
	case "amd64", "x86_64", "arm64", "aarch64", "ppc64", "ppc64le",
		"mips64", "mips64le", "riscv64", "s390x", "loong64", "sparc64", "wasm":
		return true
	}
	return false
}

// DefaultFormat returns the assembler output format used when none is given
// on the command line.
func DefaultFormat(family Family, arch string) string {
	wide := Is64Bit(arch)
	switch family {
	case Posix:
		if wide {
			return "elf64"
		}
		return "elf32"
	case Windows:
		if wide {
			return "win64"
		}
		return "win32"
	default:
		return "bin"
	}
}

// Host describes the machine qasml runs on.
type Host struct {
	OS   string
	Arch string
}

// CurrentHost probes the running process.
func CurrentHost() Host {
	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (h Host) Family() Family {
	return FamilyOf(h.OS)
}

// Recognized is false when the format falls back to raw binary.
func (h Host) Recognized() bool {
	return h.Family() != Unknown
}

func (h Host) Format() string {
	return DefaultFormat(h.Family(), h.Arch)
}

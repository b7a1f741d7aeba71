//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package platform describes how shared libraries, the C runtime in
// particular, are named on each supported operating system.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// purego only supports 64-bit platforms.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

func init() {
	if runtime.GOOS == "darwin" {
		LibraryExtension = ".dylib"
	} else {
		LibraryExtension = ".so"
	}
}

// FormatLibraryName returns the platform-specific file name of lib<name>.
// If version is 0, returns the unversioned name.
//
// Examples:
//   - Linux:   FormatLibraryName("c", 6)     -> "libc.so.6"
//   - FreeBSD: FormatLibraryName("c", 7)     -> "libc.so.7"
//   - macOS:   FormatLibraryName("System.B", 0) -> "libSystem.B.dylib"
func FormatLibraryName(name string, version int) string {
	switch {
	case version <= 0:
		return fmt.Sprintf("lib%s%s", name, LibraryExtension)
	case runtime.GOOS == "darwin":
		return fmt.Sprintf("lib%s.%d%s", name, version, LibraryExtension)
	default:
		return fmt.Sprintf("lib%s%s.%d", name, LibraryExtension, version)
	}
}

// Libc returns the base name and the versions to try, newest first, for the
// C runtime library that provides malloc and free.
func Libc() (name string, versions []int) {
	switch runtime.GOOS {
	case "darwin":
		// malloc lives in libSystem, which dlopen resolves from the shared cache.
		return "System.B", []int{0}
	case "freebsd":
		return "c", []int{7}
	default:
		return "c", []int{6}
	}
}

//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package bindings loads the C runtime library with purego and registers the
// heap functions used by package cmem.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/rc/internal/platform"
)

// EnvLibcPath names an environment variable that, when set, is tried before
// any other location for the C runtime library.
const EnvLibcPath = "RC_LIBC_PATH"

// ErrNotLoaded is returned when heap functions are used before Load succeeded.
var ErrNotLoaded = errors.New("rc: C runtime not loaded; call cmem.Init() first")

// ErrLibraryNotFound is returned when the C runtime library cannot be found.
var ErrLibraryNotFound = errors.New("rc: C runtime library not found")

var (
	libC    uintptr
	libPath string

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Function bindings
var (
	cMalloc func(size uintptr) unsafe.Pointer
	cCalloc func(count, size uintptr) unsafe.Pointer
	cFree   func(ptr unsafe.Pointer)
)

// Path returns the location the C runtime was loaded from, or "" if it is
// not loaded.
func Path() string {
	return libPath
}

// Load loads the C runtime and registers malloc, calloc and free.
// It is safe to call multiple times; subsequent calls return the first result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	name, versions := platform.Libc()

	lib, path, err := loadLibrary(name, versions)
	if err != nil {
		return fmt.Errorf("loading C runtime: %w", err)
	}
	libC, libPath = lib, path

	purego.RegisterLibFunc(&cMalloc, libC, "malloc")
	purego.RegisterLibFunc(&cCalloc, libC, "calloc")
	purego.RegisterLibFunc(&cFree, libC, "free")
	return nil
}

// loadLibrary tries the override, then every search path, then lets the
// dynamic linker resolve the bare names.
func loadLibrary(name string, versions []int) (uintptr, string, error) {
	if p := os.Getenv(EnvLibcPath); p != "" {
		if lib, err := tryOpen(p); err == nil {
			return lib, p, nil
		}
	}

	names := make([]string, 0, len(versions)+1)
	for _, ver := range versions {
		names = append(names, platform.FormatLibraryName(name, ver))
	}
	names = append(names, platform.FormatLibraryName(name, 0))

	for _, dir := range LibrarySearchPaths() {
		for _, n := range names {
			full := filepath.Join(dir, n)
			if lib, err := tryOpen(full); err == nil {
				return lib, full, nil
			}
		}
	}

	for _, n := range names {
		if lib, err := tryOpen(n); err == nil {
			return lib, n, nil
		}
	}

	return 0, "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths, "/usr/lib")

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths, "/lib", "/usr/lib")

	default:
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/lib/x86_64-linux-gnu",
			"/lib/aarch64-linux-gnu",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/lib64",
			"/usr/lib64",
			"/lib",
			"/usr/lib",
		)
	}

	return paths
}

// Malloc calls malloc(size). Returns nil if the runtime is not loaded or the
// allocation fails.
func Malloc(size uintptr) unsafe.Pointer {
	if !loaded {
		return nil
	}
	return cMalloc(size)
}

// Calloc calls calloc(count, size). Returns nil if the runtime is not loaded
// or the allocation fails.
func Calloc(count, size uintptr) unsafe.Pointer {
	if !loaded {
		return nil
	}
	return cCalloc(count, size)
}

// Free calls free(ptr). It does nothing if ptr is nil or the runtime is not
// loaded.
func Free(ptr unsafe.Pointer) {
	if !loaded || ptr == nil {
		return
	}
	cFree(ptr)
}

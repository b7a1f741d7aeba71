//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package bindings

import (
	"testing"
	"unsafe"
)

func TestLibrarySearchPaths(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("LibrarySearchPaths should return at least one path")
	}
}

func TestLibrarySearchPathsHonoursEnv(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/opt/custom/lib")
	t.Setenv("DYLD_LIBRARY_PATH", "/opt/custom/lib")

	paths := LibrarySearchPaths()
	if paths[0] != "/opt/custom/lib" {
		t.Errorf("environment path should come first, got %q", paths[0])
	}
}

func TestFreeNilIsSafe(t *testing.T) {
	Free(nil)
}

// Integration test - only runs if the C runtime can be loaded
func TestLoadLibc(t *testing.T) {
	if testing.Short() {
		t.Log("Skipping C runtime load test in short mode")
		return
	}

	if err := Load(); err != nil {
		t.Skipf("C runtime not available: %v", err)
	}
	if !loaded {
		t.Fatal("runtime should be marked loaded after successful Load")
	}
	if Path() == "" {
		t.Error("Path should be set after Load")
	}
	t.Logf("C runtime loaded from %s", Path())

	p := Calloc(4, 8)
	if p == nil {
		t.Fatal("calloc returned NULL")
	}
	words := unsafe.Slice((*uint64)(p), 4)
	for i, w := range words {
		if w != 0 {
			t.Fatalf("calloc memory not zeroed at %d: %x", i, w)
		}
	}
	words[3] = 0xdeadbeef
	if words[3] != 0xdeadbeef {
		t.Fatal("C memory not writable")
	}
	Free(p)

	m := Malloc(16)
	if m == nil {
		t.Fatal("malloc returned NULL")
	}
	Free(m)
}

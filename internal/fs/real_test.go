package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zbalkan/fc/internal/fs"
)

func TestRealSlurp(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}

		data, err := fs.NewReal().Slurp(path)
		if err != nil {
			t.Fatalf("Slurp: %v", err)
		}

		if data == nil {
			t.Fatal("Slurp returned nil for an empty file, want non-nil empty slice")
		}

		if len(data) != 0 {
			t.Fatalf("Slurp returned %d bytes, want 0", len(data))
		}
	})

	t.Run("non-empty file", func(t *testing.T) {
		path := filepath.Join(dir, "hello.txt")
		want := []byte("Line1\nLine2\n")
		if err := os.WriteFile(path, want, 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := fs.NewReal().Slurp(path)
		if err != nil {
			t.Fatalf("Slurp: %v", err)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Slurp mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.NewReal().Slurp(filepath.Join(dir, "nope.txt"))
		if err == nil {
			t.Fatal("Slurp on a missing file: want error, got nil")
		}
	})
}

func TestRealMap(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.bin")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}

		m, err := fs.NewReal().Map(path)
		if err != nil {
			t.Fatalf("Map: %v", err)
		}
		defer m.Close()

		if len(m.Bytes()) != 0 {
			t.Fatalf("Map of empty file returned %d bytes, want 0", len(m.Bytes()))
		}
	})

	t.Run("non-empty file round trip", func(t *testing.T) {
		path := filepath.Join(dir, "data.bin")
		want := []byte{1, 2, 3, 4, 5}
		if err := os.WriteFile(path, want, 0o600); err != nil {
			t.Fatal(err)
		}

		m, err := fs.NewReal().Map(path)
		if err != nil {
			t.Fatalf("Map: %v", err)
		}

		if diff := cmp.Diff(want, m.Bytes()); diff != "" {
			t.Fatalf("Map mismatch (-want +got):\n%s", diff)
		}

		if err := m.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		// Double close must be a safe no-op.
		if err := m.Close(); err != nil {
			t.Fatalf("second Close: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.NewReal().Map(filepath.Join(dir, "nope.bin"))
		if err == nil {
			t.Fatal("Map on a missing file: want error, got nil")
		}
	})
}

func TestRealStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sized.bin")
	if err := os.WriteFile(path, make([]byte, 42), 0o600); err != nil {
		t.Fatal(err)
	}

	info, err := fs.NewReal().Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if info.Size != 42 {
		t.Fatalf("Stat.Size = %d, want 42", info.Size)
	}
}

func TestRealSlurpTooLarge(t *testing.T) {
	// Real can't be driven past its ceiling in a test without allocating a
	// multi-terabyte file, so the ceiling-breach path is exercised through
	// Chaos wrapping a Real, forcing the same ErrTooLarge Real itself
	// returns once a file exceeds maxSlurpSize.
	dir := t.TempDir()
	path := filepath.Join(dir, "small.bin")

	if err := os.WriteFile(path, []byte("not actually huge"), 0o600); err != nil {
		t.Fatal(err)
	}

	chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{TooLargeRate: 1.0})
	chaos.SetMode(fs.ChaosModeActive)

	_, err := chaos.Slurp(path)
	if !errors.Is(err, fs.ErrTooLarge) {
		t.Fatalf("Slurp error = %v, want errors.Is(err, fs.ErrTooLarge)", err)
	}
}

package fc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zbalkan/fc/internal/fs"
)

func TestCompareWithFS_TooLargeIsMemoryError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.txt")
	path2 := filepath.Join(dir, "b.txt")

	if err := os.WriteFile(path1, []byte("hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path2, []byte("world\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{TooLargeRate: 1.0})
	chaos.SetMode(fs.ChaosModeActive)

	code, err := compareWithFS(chaos, path1, path2, Config{
		Mode:     TextASCII,
		Callback: func(*DiffContext, DiffBlock) {},
	})

	if code != MemoryError {
		t.Errorf("code = %v, want MemoryError", code)
	}

	var fcErr *Error
	if !errors.As(err, &fcErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}

	if fcErr.Code != MemoryError {
		t.Errorf("Error.Code = %v, want MemoryError", fcErr.Code)
	}

	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected errors.Is(err, ErrTooLarge); err = %v", err)
	}

	if !errors.Is(err, fs.ErrTooLarge) {
		t.Errorf("expected errors.Is(err, fs.ErrTooLarge); err = %v", err)
	}
}

func TestCompareWithFS_TooLargeOnBinaryMap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.bin")
	path2 := filepath.Join(dir, "b.bin")

	if err := os.WriteFile(path1, []byte{1, 2, 3}, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path2, []byte{1, 2, 3}, 0o600); err != nil {
		t.Fatal(err)
	}

	chaos := fs.NewChaos(fs.NewReal(), 2, fs.ChaosConfig{TooLargeRate: 1.0})
	chaos.SetMode(fs.ChaosModeActive)

	code, err := compareWithFS(chaos, path1, path2, Config{
		Mode:     Binary,
		Callback: func(*DiffContext, DiffBlock) {},
	})

	if code != MemoryError {
		t.Errorf("code = %v, want MemoryError", code)
	}

	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected errors.Is(err, ErrTooLarge); err = %v", err)
	}
}

package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()

	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Write file
	testPath := filepath.Join(tmpDir, "test.txt")
	testData := []byte("hello world")

	err = fs.WriteFile(testPath, testData)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Read file
	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Write to nested path
	testPath := filepath.Join(tmpDir, "a", "b", "c", "test.txt")
	err = fs.WriteFile(testPath, []byte("test"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Verify file exists
	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "a", "b", "c")
	err = fs.MkdirAll(testPath)
	if err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Test existing file
	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	// Test non-existing file
	exists, err = fs.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create file
	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	// Remove file
	err = fs.Remove(testPath)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// Verify removed
	exists, _ := fs.Exists(testPath)
	if exists {
		t.Error("expected file to be removed")
	}
}

func TestFileSystem_ReadDir(t *testing.T) {
	fs := New()

	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "b.png"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "a.jpg"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(tmpDir, "sub.png"), 0755)

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	dirs := map[string]bool{}
	for _, e := range entries {
		dirs[e.Name] = e.IsDir
	}
	if dirs["a.jpg"] || dirs["b.png"] {
		t.Error("expected files to not be reported as directories")
	}
	if !dirs["sub.png"] {
		t.Error("expected sub.png to be reported as a directory")
	}
}

func TestFileSystem_ReadDirMissing(t *testing.T) {
	fs := New()

	if _, err := fs.ReadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileSystem_Size(t *testing.T) {
	fs := New()

	testPath := filepath.Join(t.TempDir(), "frame.bin")
	os.WriteFile(testPath, make([]byte, 1234), 0644)

	size, err := fs.Size(testPath)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 1234 {
		t.Errorf("expected size 1234, got %d", size)
	}
}

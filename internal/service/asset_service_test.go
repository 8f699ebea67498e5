package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateExtension(t *testing.T) {
	svc := NewAssetService(t.TempDir())

	tests := []struct {
		filename string
		kind     AssetKind
		want     bool
	}{
		{"photo.png", AssetImage, true},
		{"PHOTO.PNG", AssetImage, true},
		{"banner.jpeg", AssetImage, true},
		{"icon.svg", AssetImage, true},
		{"clip.mp4", AssetVideo, true},
		{"clip.webm", AssetVideo, true},
		{"clip.ogg", AssetVideo, true},
		{"malware.exe", AssetImage, false},
		{"clip.mp4", AssetImage, false},
		{"photo.png", AssetVideo, false},
		{"noextension", AssetImage, false},
		{"trailingdot.", AssetImage, false},
		{"archive.tar.gz", AssetImage, false},
		{"", AssetVideo, false},
	}

	for _, tt := range tests {
		if got := svc.ValidateExtension(tt.filename, tt.kind); got != tt.want {
			t.Errorf("ValidateExtension(%q, %s) = %v, want %v", tt.filename, tt.kind, got, tt.want)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewAssetService(dir)

	content := []byte("fake png bytes")
	name, err := svc.Store(bytes.NewReader(content), "photo.png")
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	if !strings.HasSuffix(name, "_photo.png") {
		t.Fatalf("expected stored name to keep the sanitized original, got %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		t.Fatalf("stored name must not contain path separators, got %q", name)
	}

	got, err := os.ReadFile(svc.Path(name))
	if err != nil {
		t.Fatalf("failed to read stored asset: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("stored bytes differ from the uploaded bytes")
	}
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	svc := NewAssetService(t.TempDir())

	first, err := svc.Store(bytes.NewReader([]byte("a")), "photo.png")
	if err != nil {
		t.Fatalf("first Store returned error: %v", err)
	}
	second, err := svc.Store(bytes.NewReader([]byte("b")), "photo.png")
	if err != nil {
		t.Fatalf("second Store returned error: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct stored names for identical uploads, got %q twice", first)
	}
}

func TestStoreSanitizesTraversalAttempts(t *testing.T) {
	dir := t.TempDir()
	svc := NewAssetService(dir)

	name, err := svc.Store(bytes.NewReader([]byte("payload")), `../../etc/evil photo.png`)
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("sanitized name still carries traversal characters: %q", name)
	}
	if !strings.HasSuffix(name, "_evil_photo.png") {
		t.Fatalf("expected sanitized original name, got %q", name)
	}

	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("expected asset inside the upload root: %v", err)
	}
}

func TestStoreFailsOutsideWritableRoot(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	svc := NewAssetService(filepath.Join(blocked, "uploads"))
	if _, err := svc.Store(bytes.NewReader([]byte("data")), "photo.png"); err == nil {
		t.Fatal("expected Store to fail when the upload root cannot be created")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	svc := NewAssetService(dir)

	name, err := svc.Store(bytes.NewReader([]byte("data")), "photo.png")
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	svc.Remove(name)
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatal("expected asset to be deleted")
	}

	// Removing again, or removing something that never existed, must not
	// fail the caller.
	svc.Remove(name)
	svc.Remove("never-stored.png")
	svc.Remove("")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{`..\..\windows.png`, "windows.png"},
		{"../../../etc/passwd", "passwd"},
		{".hidden", "hidden"},
		{"??!!", "upload"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

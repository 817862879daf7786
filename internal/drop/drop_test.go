package drop

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	spaced := touch(t, filepath.Join(dir, "My Pictures", "beach.png"))
	apostrophe := touch(t, filepath.Join(dir, "it's.png"))
	backslash := touch(t, filepath.Join(dir, `C:\x.png`))

	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"plain path", "/home/u/pic.png", []string{"/home/u/pic.png"}},
		{"trailing space", "/home/u/pic.png ", []string{"/home/u/pic.png"}},
		{"single quoted", "'/home/u/my pic.png' ", []string{"/home/u/my pic.png"}},
		{"double quoted", `"/home/u/my pic.png"`, []string{"/home/u/my pic.png"}},
		{"backslash escaped", `/home/u/my\ pic.png`, []string{"/home/u/my pic.png"}},
		{"file uri", "file:///home/u/my%20pic.png", []string{"/home/u/my pic.png"}},
		{"file uri localhost", "file://localhost/tmp/a.jpg", []string{"/tmp/a.jpg"}},
		{"uri list", "file:///a.png\r\nfile:///b.png\r\n", []string{"/a.png", "/b.png"}},
		{"multiple quoted", "'/a b.png' '/c.png'", []string{"/a b.png", "/c.png"}},
		{"remote uri skipped", "https://example.com/x.png /local.png", []string{"/local.png"}},
		{"remote host file uri skipped", "file://otherhost/x.png", nil},
		{"empty", "", nil},
		{"whitespace only", " \n\t", nil},
		{"empty quotes", "''", nil},
		{"unquoted existing path with space", spaced, []string{spaced}},
		{"unquoted existing path with space and newline", spaced + "\n", []string{spaced}},
		{"unquoted existing path with apostrophe", apostrophe, []string{apostrophe}},
		{"unquoted existing path with backslash", backslash, []string{backslash}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paths(tt.payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Paths(%q) = %#v, want %#v", tt.payload, got, tt.want)
			}
		})
	}
}

// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"io"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// MustWriteZip writes a zip archive to path. Entry names ending in '/' are
// directories. Names listed in stored are written uncompressed; all other
// files are deflated.
func MustWriteZip(t testing.TB, path string, files map[string]string, stored ...string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer MustClose(t, f)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
		if strings.HasSuffix(name, "/") || slices.Contains(stored, name) {
			hdr.Method = zip.Store
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := io.WriteString(w, files[name]); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish %s: %v", path, err)
	}
}

/*
Copyright The AssetKit Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, url string, content []byte) string {
	t.Helper()
	sum := md5.Sum(content)
	catalog := fmt.Sprintf("entries:\n  - name: %s\n    url: %s\n    checksum: %s\n",
		name, url, hex.EncodeToString(sum[:]))
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0644))
	return path
}

func executeCommand(out *bytes.Buffer, args ...string) error {
	cmd := newRootCmd(out)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestListCmd(t *testing.T) {
	content := []byte("frame data")
	catalog := writeCatalog(t, "sample.mp4", "https://example.com/sample.mp4", content)

	var out bytes.Buffer
	require.NoError(t, executeCommand(&out, "list", "--catalog", catalog))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "sample.mp4")
	assert.Contains(t, out.String(), "https://example.com/sample.mp4")
}

func TestFetchCmd(t *testing.T) {
	content := []byte("frame data")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer srv.Close()

	catalog := writeCatalog(t, "sample.mp4", srv.URL+"/sample.mp4", content)
	dest := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, executeCommand(&out, "fetch", "sample.mp4", "--catalog", catalog, "--dest", dest, "--no-progress"))

	got, err := os.ReadFile(filepath.Join(dest, "sample.mp4"))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetchCmdUnknownAsset(t *testing.T) {
	content := []byte("frame data")
	catalog := writeCatalog(t, "sample.mp4", "https://example.com/sample.mp4", content)

	var out bytes.Buffer
	err := executeCommand(&out, "fetch", "nonexistent.ext", "--catalog", catalog, "--dest", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.mp4")
}

func TestVerifyCmd(t *testing.T) {
	content := []byte("frame data")
	catalog := writeCatalog(t, "sample.mp4", "https://example.com/sample.mp4", content)
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "sample.mp4"), content, 0644))

	var out bytes.Buffer
	require.NoError(t, executeCommand(&out, "verify", "sample.mp4", "--catalog", catalog, "--dest", dest))
	assert.Contains(t, out.String(), "sample.mp4: ok")
}

func TestVerifyCmdMismatch(t *testing.T) {
	content := []byte("frame data")
	catalog := writeCatalog(t, "sample.mp4", "https://example.com/sample.mp4", content)
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "sample.mp4"), []byte("mutated"), 0644))

	var out bytes.Buffer
	err := executeCommand(&out, "verify", "sample.mp4", "--catalog", catalog, "--dest", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

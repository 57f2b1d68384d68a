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

package checksum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	sum, err := Sum(strings.NewReader("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6", sum)
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.bin")
	require.NoError(t, os.WriteFile(path, []byte("The quick brown fox jumps over the lazy dog"), 0644))

	sum, err := SumFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6", sum)
}

func TestSumFileMissing(t *testing.T) {
	_, err := SumFile(filepath.Join(t.TempDir(), "no-such-file"))
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.bin")
	content := []byte("The quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(path, content, 0644))

	assert.True(t, Matches(path, "9e107d9d372bb6826bd81d3542a419d6"))

	// Hex comparison is case-insensitive on the expected side.
	assert.True(t, Matches(path, "9E107D9D372BB6826BD81D3542A419D6"))
}

func TestMatchesMissingFile(t *testing.T) {
	assert.False(t, Matches(filepath.Join(t.TempDir(), "absent"), "9e107d9d372bb6826bd81d3542a419d6"))
}

func TestMatchesMutatedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asset.bin")
	content := []byte("The quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(path, content, 0644))
	require.True(t, Matches(path, "9e107d9d372bb6826bd81d3542a419d6"))

	// Any single-byte mutation must break the match.
	for i := range content {
		mutated := append([]byte(nil), content...)
		mutated[i] ^= 0x01
		require.NoError(t, os.WriteFile(path, mutated, 0644))
		assert.Falsef(t, Matches(path, "9e107d9d372bb6826bd81d3542a419d6"), "mutation at byte %d matched", i)
	}
}

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

// Package checksum computes and compares MD5 digests of asset files.
//
// MD5 is used here purely as a parity check against a static asset catalog,
// not for any security property.
package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"
)

// Sum hashes a reader and returns the digest as a lowercase hex string.
func Sum(in io.Reader) (string, error) {
	hash := md5.New()
	if _, err := io.Copy(hash, in); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// SumFile calculates the MD5 digest for a given file.
func SumFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Sum(f)
}

// Matches reports whether the file's MD5 digest equals the expected
// lowercase hex digest. A missing or unreadable file is treated as not
// matching rather than an error.
func Matches(filename, expected string) bool {
	sum, err := SumFile(filename)
	if err != nil {
		return false
	}
	return sum == strings.ToLower(expected)
}

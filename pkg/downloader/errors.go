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

package downloader

import (
	"fmt"
	"strings"
)

// UnknownAssetError is returned when a name is not present in the registry.
// Valid carries the full list of registered names for the error message.
type UnknownAssetError struct {
	Name  string
	Valid []string
}

func (e *UnknownAssetError) Error() string {
	return fmt.Sprintf("invalid asset %q: it should be one of the following: %s", e.Name, strings.Join(e.Valid, ", "))
}

// ChecksumMismatchError is returned when a file still fails verification
// after the single repair re-download has been spent.
type ChecksumMismatchError struct {
	Name string
	Want string
	Got  string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Name, e.Want, e.Got)
}

// TransferError wraps a failure reported by the transfer layer. It is never
// retried; retry applies only to post-hoc corruption of an existing file.
type TransferError struct {
	URL string
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s failed: %v", e.URL, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

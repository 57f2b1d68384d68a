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
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/gofrs/flock"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetkit/assetkit/internal/fileutil"
	"github.com/assetkit/assetkit/pkg/checksum"
	"github.com/assetkit/assetkit/pkg/getter"
	"github.com/assetkit/assetkit/pkg/progress"
	"github.com/assetkit/assetkit/pkg/registry"
)

// VerificationStrategy describes a strategy for determining whether to
// verify an asset.
type VerificationStrategy int

const (
	// VerifyExisting checksums only files that already exist locally; a
	// fresh download is trusted as delivered. This is the default.
	VerifyExisting VerificationStrategy = iota
	// VerifyAlways also verifies just-downloaded bytes, spending the single
	// repair re-download if they do not match.
	VerifyAlways
	// VerifyNever accepts any existing file without a checksum.
	VerifyNever
)

// maxRepairs bounds the corruption-repair loop to a single re-download.
const maxRepairs = 1

// lockTimeout bounds how long Resolve waits for another process working on
// the same path.
const lockTimeout = 30 * time.Second

// Downloader resolves asset names to verified local files.
type Downloader struct {
	// Out is the location to write progress and status messages.
	Out io.Writer
	// Registry maps asset names to URLs and expected checksums.
	Registry *registry.Registry
	// Getters is the collection of transfer backends, selected by URL scheme.
	Getters getter.Providers
	// Options provide parameters to be passed along to the Getter being
	// initialized.
	Options []getter.Option
	// BaseDir is the directory assets are resolved into. Defaults to the
	// current directory.
	BaseDir string
	// Verify indicates what verification strategy to use.
	Verify VerificationStrategy
	// Progress enables a progress line on Out during transfers.
	Progress bool
}

// Resolve returns the local path for the named asset, downloading it when
// absent and repairing it once when its checksum does not match.
//
// The name doubles as the path relative to BaseDir, so it is validated
// against path traversal before any filesystem use.
func (d *Downloader) Resolve(name string) (string, error) {
	dest, err := d.localPath(name)
	if err != nil {
		return "", err
	}

	if d.Registry == nil {
		return "", errors.New("no registry configured")
	}
	entry, ok := d.Registry.Lookup(name)
	if !ok {
		return "", &UnknownAssetError{Name: name, Valid: d.Registry.Names()}
	}

	// The directory must exist before the lock file can be created in it.
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", errors.Wrapf(err, "creating directory for %s", dest)
	}

	// Advisory lock for process synchronization: two processes must not
	// race to write or delete the same path.
	fileLock := flock.New(dest + ".lock")
	lockCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return "", errors.Wrapf(err, "locking %s", dest)
	}
	if !locked {
		return "", errors.Errorf("unable to lock %s", dest)
	}
	defer fileLock.Unlock()

	repairs := 0
	for {
		if _, err := os.Stat(dest); err == nil {
			if d.Verify == VerifyNever || checksum.Matches(dest, entry.Checksum) {
				log.Debugf("resolved %s -> %s", name, dest)
				d.printf("%s asset download complete.\n", name)
				return dest, nil
			}

			if repairs >= maxRepairs {
				got, _ := checksum.SumFile(dest)
				return "", &ChecksumMismatchError{Name: name, Want: entry.Checksum, Got: got}
			}
			repairs++

			d.printf("File corrupted. Re-downloading %s\n", name)
			if err := os.Remove(dest); err != nil {
				return "", errors.Wrapf(err, "removing corrupt file %s", dest)
			}
		} else if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "inspecting %s", dest)
		} else {
			d.printf("Downloading %s asset\n", name)
		}

		if err := d.download(entry, dest); err != nil {
			return "", err
		}

		if d.Verify != VerifyAlways {
			// The transfer layer fails loudly on non-success outcomes, so a
			// completed download is trusted as delivered.
			log.Debugf("resolved %s -> %s", name, dest)
			return dest, nil
		}
		// VerifyAlways loops back to checksum the fresh bytes.
	}
}

// ResolveAll resolves each named asset in turn and returns the paths of
// those that succeeded. Failures are aggregated; one bad name does not stop
// the rest.
func (d *Downloader) ResolveAll(names ...string) ([]string, error) {
	var result *multierror.Error
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p, err := d.Resolve(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		paths = append(paths, p)
	}
	return paths, result.ErrorOrNil()
}

// localPath validates the asset name and joins it under BaseDir. Absolute
// names and traversal sequences are rejected since the name is used
// directly in path construction.
func (d *Downloader) localPath(name string) (string, error) {
	if name == "" {
		return "", errors.New("asset name must not be empty")
	}
	if filepath.IsAbs(name) || strings.Contains(name, "..") {
		return "", errors.Errorf("invalid asset name %q", name)
	}
	base := d.BaseDir
	if base == "" {
		base = "."
	}
	return securejoin.SecureJoin(base, name)
}

// download fetches the entry's URL and writes it to dest atomically. The
// response stream is closed on every exit path.
func (d *Downloader) download(e registry.Entry, dest string) error {
	u, err := url.Parse(e.URL)
	if err != nil {
		return errors.Wrapf(err, "invalid source URL %s", e.URL)
	}

	g, err := d.Getters.ByScheme(u.Scheme)
	if err != nil {
		return err
	}

	opts := append([]getter.Option{getter.WithURL(e.URL)}, d.Options...)
	resp, err := g.Get(e.URL, opts...)
	if err != nil {
		return &TransferError{URL: e.URL, Err: err}
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if d.Progress {
		body = progress.NewReader(body, resp.Size, d.out(), filepath.Base(dest))
	}

	if err := fileutil.AtomicWriteFile(dest, body, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", dest)
	}
	return nil
}

func (d *Downloader) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.out(), format, args...)
}

func (d *Downloader) out() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

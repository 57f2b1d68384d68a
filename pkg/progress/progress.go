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

// Package progress wraps a byte stream to report human-readable transfer
// progress while passing the bytes through unchanged.
package progress

import (
	"fmt"
	"io"
	"time"
)

// updateInterval throttles how often progress lines are rewritten.
const updateInterval = 125 * time.Millisecond

// Reader forwards Read calls to the underlying reader while keeping a byte
// count and periodically rewriting a progress line on out. It never alters
// stream contents or ordering.
type Reader struct {
	r     io.Reader
	out   io.Writer
	desc  string
	total int64
	read  int64
	last  time.Time
	done  bool
}

// NewReader wraps r. total is the expected size in bytes, or a negative
// value when unknown. desc is a short label printed with each update.
func NewReader(r io.Reader, total int64, out io.Writer, desc string) *Reader {
	return &Reader{r: r, out: out, desc: desc, total: total}
}

func (p *Reader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)

	switch {
	case err == io.EOF:
		p.finish()
	case time.Since(p.last) >= updateInterval:
		p.update()
		p.last = time.Now()
	}
	return n, err
}

func (p *Reader) update() {
	if p.total > 0 {
		pct := p.read * 100 / p.total
		fmt.Fprintf(p.out, "\r  %s  %s / %s (%d%%)", p.desc, formatBytes(p.read), formatBytes(p.total), pct)
		return
	}
	fmt.Fprintf(p.out, "\r  %s  %s", p.desc, formatBytes(p.read))
}

// finish writes the final count and terminates the progress line. Safe to
// hit more than once since readers may return EOF repeatedly.
func (p *Reader) finish() {
	if p.done {
		return
	}
	p.done = true
	p.update()
	fmt.Fprintln(p.out)
}

// formatBytes renders a byte count in a compact human-readable unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

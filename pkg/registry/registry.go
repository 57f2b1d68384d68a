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

// Package registry holds the catalog mapping asset names to their source
// URLs and expected checksums.
package registry

import (
	"encoding/hex"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Entry is a single asset record: the name under which the asset is
// addressed, the URL it can be fetched from, and the MD5 checksum its
// content is expected to have. Entries are immutable once loaded.
type Entry struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Checksum string `json:"checksum"`
}

// Registry is an immutable name -> Entry mapping. Construct one with New or
// Load and pass it into a downloader; there is no process-wide registry.
type Registry struct {
	entries map[string]Entry
}

// File is the on-disk catalog format, a YAML document with a single
// top-level entries list.
type File struct {
	Entries []Entry `json:"entries"`
}

// New builds a Registry from the given entries.
//
// Names must be unique and non-empty, and checksums must be valid hex MD5
// digests. Checksums are normalized to lowercase.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("registry entry has an empty name")
		}
		if e.URL == "" {
			return nil, errors.Errorf("registry entry %q has an empty URL", e.Name)
		}
		if _, ok := r.entries[e.Name]; ok {
			return nil, errors.Errorf("duplicate registry entry %q", e.Name)
		}
		sum := strings.ToLower(e.Checksum)
		if b, err := hex.DecodeString(sum); err != nil || len(b) != 16 {
			return nil, errors.Errorf("registry entry %q has an invalid MD5 checksum %q", e.Name, e.Checksum)
		}
		e.Checksum = sum
		r.entries[e.Name] = e
	}
	return r, nil
}

// Lookup returns the entry for the given asset name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns every registered asset name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Load parses a YAML catalog document into a Registry.
func Load(data []byte) (*Registry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing asset catalog")
	}
	return New(f.Entries...)
}

// LoadFile reads a YAML catalog from disk and returns a Registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading asset catalog %s", path)
	}
	return Load(data)
}

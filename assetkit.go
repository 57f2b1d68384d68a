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

// Package assetkit downloads sample media assets by name, verifying cached
// copies against their registered checksums and re-downloading them once on
// corruption.
//
//	path, err := assetkit.Download(registry.Vehicles)
//	// path == "vehicles.mp4"
package assetkit

import (
	"os"

	"github.com/assetkit/assetkit/pkg/downloader"
	"github.com/assetkit/assetkit/pkg/getter"
	"github.com/assetkit/assetkit/pkg/registry"
)

// Download fetches the named asset from the built-in catalog into the
// current directory and returns its local path. String literals convert to
// registry.Asset, so both Download(registry.Vehicles) and
// Download("vehicles.mp4") work.
func Download(asset registry.Asset) (string, error) {
	return DownloadTo(asset.Filename(), ".")
}

// DownloadTo fetches the named asset from the built-in catalog into dir.
func DownloadTo(name, dir string) (string, error) {
	d := &downloader.Downloader{
		Out:      os.Stdout,
		Registry: registry.Default(),
		Getters:  getter.Getters(),
		BaseDir:  dir,
	}
	return d.Resolve(name)
}

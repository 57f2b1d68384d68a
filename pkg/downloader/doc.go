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

/*
Package downloader resolves asset names to verified local files.

Given an asset name, a Downloader consults its registry for the source URL
and expected checksum, inspects the local filesystem, and then either
downloads the asset, accepts the existing file, or deletes a corrupt copy
and re-downloads it once. On success the returned path points at a file
whose content matches the registered checksum (or, for a fresh download
under the default strategy, at the bytes the transfer delivered).
*/
package downloader

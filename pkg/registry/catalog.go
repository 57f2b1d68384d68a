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

package registry

// Asset is a typed name for an asset in the built-in catalog. Plain strings
// convert to it, so both Download(registry.Vehicles) and
// Download("vehicles.mp4") work.
type Asset string

// Filename returns the asset's local filename, which doubles as its
// catalog name.
func (a Asset) Filename() string {
	return string(a)
}

func (a Asset) String() string {
	return string(a)
}

// Built-in sample assets.
const (
	Vehicles          Asset = "vehicles.mp4"
	VehiclesAerial    Asset = "vehicles-2.mp4"
	MilkBottlingPlant Asset = "milk-bottling-plant.mp4"
	GroceryStore      Asset = "grocery-store.mp4"
	Subway            Asset = "subway.mp4"
	MarketSquare      Asset = "market-square.mp4"
	PeopleWalking     Asset = "people-walking.mp4"
	Basketball        Asset = "basketball-1.mp4"
	PeopleWalkingJPG  Asset = "people-walking.jpg"
)

const (
	videoBaseURL = "https://media.roboflow.com/supervision/video-examples/"
	imageBaseURL = "https://media.roboflow.com/supervision/image-examples/"
)

var defaultEntries = []Entry{
	{Name: Vehicles.Filename(), URL: videoBaseURL + "vehicles.mp4", Checksum: "8155ff4e4de08cfa25f39de96483f918"},
	{Name: VehiclesAerial.Filename(), URL: videoBaseURL + "vehicles-2.mp4", Checksum: "830af6fba21ffbf14867a7fea595937b"},
	{Name: MilkBottlingPlant.Filename(), URL: videoBaseURL + "milk-bottling-plant.mp4", Checksum: "9e8fb6e883f842a38b3d34267290bdc7"},
	{Name: GroceryStore.Filename(), URL: videoBaseURL + "grocery-store.mp4", Checksum: "11402e7b861c08cdd55a8a69b735ac61"},
	{Name: Subway.Filename(), URL: videoBaseURL + "subway.mp4", Checksum: "453475750691fb23c56a0cffef089194"},
	{Name: MarketSquare.Filename(), URL: videoBaseURL + "market-square.mp4", Checksum: "859179bf4a21f80a8baabfdb2ed716dc"},
	{Name: PeopleWalking.Filename(), URL: videoBaseURL + "people-walking.mp4", Checksum: "0574c053c8686c3f1dc0aa3743e45cb9"},
	{Name: Basketball.Filename(), URL: videoBaseURL + "basketball-1.mp4", Checksum: "60d79f2e7a0cb395f5d9e0c9ff0fd7e4"},
	{Name: PeopleWalkingJPG.Filename(), URL: imageBaseURL + "people-walking.jpg", Checksum: "2c4545781d93b5bb0be1153079db6dc3"},
}

// Default returns the built-in catalog of sample video and image assets.
func Default() *Registry {
	r, err := New(defaultEntries...)
	if err != nil {
		// The built-in table is validated by tests; a bad entry here is a
		// programming error.
		panic(err)
	}
	return r
}

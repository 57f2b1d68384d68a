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
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/assetkit/assetkit/internal/version"
	"github.com/assetkit/assetkit/pkg/registry"
)

const rootDesc = `
AssetKit fetches sample media assets by name, verifying cached copies
against their registered checksums and re-downloading them on corruption.
`

func newRootCmd(out io.Writer) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "assetkit",
		Short:        "download and verify sample media assets",
		Long:         rootDesc,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	addRootFlags(cmd.PersistentFlags(), &debug)

	cmd.AddCommand(
		newFetchCmd(out),
		newListCmd(out),
		newVerifyCmd(out),
	)
	return cmd
}

func addRootFlags(flags *pflag.FlagSet, debug *bool) {
	flags.BoolVar(debug, "debug", false, "enable verbose output")
}

// loadRegistry returns the catalog to operate on: the built-in one, or the
// YAML catalog at path when given.
func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(path)
}

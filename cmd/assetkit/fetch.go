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
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/assetkit/assetkit/pkg/downloader"
	"github.com/assetkit/assetkit/pkg/getter"
)

const fetchDesc = `
Fetch resolves each named asset to a local file, downloading it from its
registered URL when absent. An existing file whose checksum does not match
the catalog is deleted and downloaded again once.
`

type fetchOptions struct {
	dest            string
	catalog         string
	verifyDownloads bool
	noProgress      bool
}

func newFetchCmd(out io.Writer) *cobra.Command {
	o := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch NAME...",
		Short: "download one or more assets",
		Long:  fetchDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(out, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.dest, "dest", "d", ".", "directory to resolve assets into")
	f.StringVar(&o.catalog, "catalog", "", "path to a YAML asset catalog (defaults to the built-in catalog)")
	f.BoolVar(&o.verifyDownloads, "verify-downloads", false, "also checksum freshly downloaded files")
	f.BoolVar(&o.noProgress, "no-progress", false, "disable the transfer progress line")

	return cmd
}

func (o *fetchOptions) run(out io.Writer, args []string) error {
	reg, err := loadRegistry(o.catalog)
	if err != nil {
		return err
	}

	d := &downloader.Downloader{
		Out:      out,
		Registry: reg,
		Getters:  getter.Getters(),
		BaseDir:  o.dest,
		Progress: !o.noProgress && term.IsTerminal(int(os.Stdout.Fd())),
	}
	if o.verifyDownloads {
		d.Verify = downloader.VerifyAlways
	}

	_, err = d.ResolveAll(args...)
	return err
}

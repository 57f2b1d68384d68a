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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/assetkit/assetkit/pkg/checksum"
)

const verifyDesc = `
Verify checksums local asset files against the catalog without touching the
network. Missing files and checksum mismatches are reported as errors.
`

type verifyOptions struct {
	dest    string
	catalog string
}

func newVerifyCmd(out io.Writer) *cobra.Command {
	o := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify NAME...",
		Short: "check local assets against their registered checksums",
		Long:  verifyDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(out, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.dest, "dest", "d", ".", "directory the assets were resolved into")
	f.StringVar(&o.catalog, "catalog", "", "path to a YAML asset catalog (defaults to the built-in catalog)")

	return cmd
}

func (o *verifyOptions) run(out io.Writer, args []string) error {
	reg, err := loadRegistry(o.catalog)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, name := range args {
		e, ok := reg.Lookup(name)
		if !ok {
			result = multierror.Append(result, errors.Errorf("unknown asset %q", name))
			continue
		}
		path := filepath.Join(o.dest, name)
		if _, err := os.Stat(path); err != nil {
			result = multierror.Append(result, errors.Errorf("%s: not present locally", name))
			continue
		}
		if !checksum.Matches(path, e.Checksum) {
			result = multierror.Append(result, errors.Errorf("%s: checksum mismatch", name))
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", name)
	}
	return result.ErrorOrNil()
}

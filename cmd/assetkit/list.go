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

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type listOptions struct {
	catalog     string
	maxColWidth uint
}

func newListCmd(out io.Writer) *cobra.Command {
	o := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the assets in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.catalog, "catalog", "", "path to a YAML asset catalog (defaults to the built-in catalog)")
	f.UintVar(&o.maxColWidth, "max-col-width", 80, "maximum column width for output table")

	return cmd
}

func (o *listOptions) run(out io.Writer) error {
	reg, err := loadRegistry(o.catalog)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.MaxColWidth = o.maxColWidth
	table.AddRow("NAME", "URL", "CHECKSUM")
	for _, name := range reg.Names() {
		e, _ := reg.Lookup(name)
		table.AddRow(e.Name, e.URL, e.Checksum)
	}
	fmt.Fprintln(out, table)
	return nil
}

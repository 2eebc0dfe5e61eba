package cli

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/outlet/pkg/outlet/manifest"
	"github.com/BrandonKowalski/outlet/pkg/outlet/router"
)

// routeRow is one route table entry as listed by the routes command.
type routeRow struct {
	Pathname string `json:"pathname"`
	Kind     string `json:"kind"`
	Parent   string `json:"parent,omitempty"`
}

// routesCmd lists the route table built from the manifest.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table built from the manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}

		table, err := router.BuildTable(m.RouteTree())
		if err != nil {
			return err
		}

		rows := make([]routeRow, 0, table.Len())
		for _, p := range table.Pathnames() {
			entry, err := table.Lookup(p)
			if err != nil {
				return err
			}
			rows = append(rows, routeRow{
				Pathname: entry.Pathname,
				Kind:     entry.Kind.String(),
				Parent:   entry.ParentPathname,
			})
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, rows)
		}

		printSection(out, "Routes (root: "+m.Root+")")
		cells := make([][]string, len(rows))
		for i, r := range rows {
			cells[i] = []string{r.Pathname, r.Kind, r.Parent}
		}
		printTable(out, []string{"PATHNAME", "KIND", "PARENT"}, cells)
		return nil
	},
}

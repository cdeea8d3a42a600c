package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/twelve345/ingress-inventory/internal/render"
	"github.com/twelve345/ingress-inventory/pkg/inventory"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <export.json>",
	Short: "Print per-category group and item counts for an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := inventory.LoadFile(args[0])
		if err != nil {
			return err
		}

		session := inventory.NewSession(items)
		grouped := session.View(inventory.FilterConfig{}, inventory.SortConfig{KeyMode: inventory.KeySortName})

		if len(grouped) == 0 {
			fmt.Println("No items in this export.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "CATEGORY\tGROUPS\tITEMS\t")

		var totalGroups, totalItems int
		for _, category := range render.Categories(grouped) {
			groups := grouped[category]
			itemCount := 0
			for _, g := range groups {
				itemCount += len(g.Items)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", category, len(groups), itemCount)
			totalGroups += len(groups)
			totalItems += itemCount
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t\n", totalGroups, totalItems)
		w.Flush()

		fmt.Println()
		fmt.Println("Filterable rarities:", strings.Join(sortedSet(session.Options.Rarities), ", "))

		return nil
	},
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

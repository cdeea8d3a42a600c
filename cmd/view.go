package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twelve345/ingress-inventory/internal/render"
	"github.com/twelve345/ingress-inventory/pkg/inventory"
)

// viewCmd runs the full pipeline over an export file and prints the
// grouped view.
var viewCmd = &cobra.Command{
	Use:   "view <export.json>",
	Short: "Print the grouped inventory from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := inventory.LoadFile(args[0])
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		rarity, _ := cmd.Flags().GetString("rarity")
		hideCarried, _ := cmd.Flags().GetBool("hide-carried")
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")

		session := inventory.NewSession(items)
		grouped := session.View(
			inventory.FilterConfig{Rarity: rarity},
			inventory.SortConfig{KeyMode: inventory.KeySortName},
		)

		if category != "" {
			groups, ok := grouped[category]
			if !ok {
				return fmt.Errorf("no %q items in this export", category)
			}
			grouped = inventory.Grouped{category: groups}
		}

		render.PrintGrouped(grouped, render.Options{
			OutputFlags: outputFlags,
			Delimiter:   delimiter,
			HideCarried: hideCarried,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringP("category", "c", "", "Only print this display category (e.g. Keys, Mods)")
	viewCmd.Flags().StringP("rarity", "r", "", "Only keep items with this exact rarity (e.g. VERY_RARE)")
	viewCmd.Flags().Bool("hide-carried", false, "Hide items currently stored inside a capsule")
	viewCmd.Flags().StringP("output", "o", "tcg", "Output flags: t=title, c=count, g=category, r=rarity, l=level, k=key, d=distance")
	viewCmd.Flags().StringP("delimiter", "d", " ", "Column delimiter")
}

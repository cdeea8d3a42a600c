package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twelve345/ingress-inventory/internal/render"
	"github.com/twelve345/ingress-inventory/pkg/geo"
	"github.com/twelve345/ingress-inventory/pkg/inventory"
)

// keysCmd lists portal key groups with the selectable key sort modes,
// including distance from a reference location.
var keysCmd = &cobra.Command{
	Use:   "keys <export.json>",
	Short: "Print portal key groups, sortable by name, count, recency or distance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := inventory.LoadFile(args[0])
		if err != nil {
			return err
		}

		mode, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")
		hideCarried, _ := cmd.Flags().GetBool("hide-carried")
		miles, _ := cmd.Flags().GetBool("miles")
		if !miles {
			miles = viper.GetString("units") == "miles"
		}

		keyMode := inventory.KeySort(mode)
		switch keyMode {
		case inventory.KeySortName, inventory.KeySortCount, inventory.KeySortRecent, inventory.KeySortDistance:
		default:
			return fmt.Errorf("unknown sort mode %q (valid: name, count, recent, distance)", mode)
		}

		location, err := referenceLocation(cmd)
		if err != nil {
			return err
		}
		if keyMode == inventory.KeySortDistance && location == nil {
			return fmt.Errorf("distance sort needs a location: pass --lat/--lng or set location.lat/location.lng in the config")
		}

		session := inventory.NewSession(items)
		grouped := session.View(
			inventory.FilterConfig{},
			inventory.SortConfig{KeyMode: keyMode, Descending: desc, Location: location},
		)

		keys, ok := grouped[inventory.CategoryKeys]
		if !ok {
			fmt.Println("No keys in this export.")
			return nil
		}

		outputFlags := "tc"
		if location != nil {
			outputFlags = "tcd"
		}
		render.PrintGrouped(inventory.Grouped{inventory.CategoryKeys: keys}, render.Options{
			OutputFlags: outputFlags,
			HideCarried: hideCarried,
			Location:    location,
			Miles:       miles,
		})
		return nil
	},
}

// referenceLocation resolves the point distances are measured from:
// explicit flags first, then the config file. Nil when neither is set.
func referenceLocation(cmd *cobra.Command) (*geo.Point, error) {
	lat, _ := cmd.Flags().GetFloat64("lat")
	lng, _ := cmd.Flags().GetFloat64("lng")
	if cmd.Flags().Changed("lat") != cmd.Flags().Changed("lng") {
		return nil, fmt.Errorf("--lat and --lng must be passed together")
	}
	if cmd.Flags().Changed("lat") {
		return &geo.Point{Lat: lat, Lng: lng}, nil
	}

	lat = viper.GetFloat64("location.lat")
	lng = viper.GetFloat64("location.lng")
	if lat == 0 && lng == 0 {
		return nil, nil
	}
	return &geo.Point{Lat: lat, Lng: lng}, nil
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().StringP("sort", "s", "name", "Sort mode: name, count, recent, distance")
	keysCmd.Flags().Bool("desc", false, "Sort in descending order")
	keysCmd.Flags().Bool("hide-carried", false, "Hide keys currently stored inside a capsule")
	keysCmd.Flags().Float64("lat", 0, "Reference latitude for the distance column/sort")
	keysCmd.Flags().Float64("lng", 0, "Reference longitude for the distance column/sort")
	keysCmd.Flags().Bool("miles", false, "Print distances in miles instead of kilometers")
}

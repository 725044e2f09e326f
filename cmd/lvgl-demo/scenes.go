package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-lvgl/lvgl/pkg/demo"
)

func init() {
	rootCmd.AddCommand(scenesCmd)
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "list the demo scenes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, sc := range demo.Scenes() {
				fmt.Fprintf(tw, "%s\t%s\n", sc.Name, sc.Short)
			}
			return tw.Flush()
		})
	},
}

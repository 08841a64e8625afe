// Package day holds the day command group: rotation, browsing, clearing.
package day

import "github.com/spf13/cobra"

// Cmd groups all day commands.
var Cmd = &cobra.Command{
	Use:   "day",
	Short: "Rotate, browse, and clear day buckets",
}

func init() {
	Cmd.AddCommand(rotateCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(openCmd)
	Cmd.AddCommand(clearCmd)
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions captures category selection flags for commands.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category selection flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category by name or id.")
	_ = cmd.MarkFlagRequired("category")
}

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of the task or category.")
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <relationship-id>...",
		Short: "Delete one or more relationships",
		Long: `Deletes relationships by id. Deletion is best-effort over the
given list: a failing id is reported and the rest are still processed.

Examples:
  relations delete 3
  relations delete 3 7 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		deleted := 0
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil || id <= 0 {
				fmt.Printf("Skipping invalid id %q\n", arg)
				continue
			}

			if _, err := d.Service.Delete(ctx, id); err != nil {
				fmt.Printf("Failed to delete %d: %v\n", id, err)
				continue
			}
			deleted++
			fmt.Printf("Deleted relationship %d\n", id)
		}

		fmt.Printf("\n%d relationship(s) deleted\n", deleted)
		return nil
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
)

func newListCmd() *cobra.Command {
	var (
		status string
		rtype  string
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List relationships",
		Long: `Lists relationships, newest first.

Examples:
  relations list
  relations list --status inactive
  relations list --type mirror --search staging`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, status, rtype, search, limit)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, inactive)")
	cmd.Flags().StringVar(&rtype, "type", "", "Filter by relationship type")
	cmd.Flags().StringVar(&search, "search", "", "Search relationship names")
	cmd.Flags().IntVar(&limit, "limit", DefaultListLimit, "Maximum number of results")

	return cmd
}

func runList(cmd *cobra.Command, status, rtype, search string, limit int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		opts := ports.ListOptions{
			Status: entities.Status(status),
			Type:   rtype,
			Search: search,
			Limit:  limit,
		}

		rels, err := d.Service.List(ctx, opts)
		if err != nil {
			return err
		}

		total, err := d.Service.Count(ctx, opts)
		if err != nil {
			return err
		}

		if len(rels) == 0 {
			fmt.Println("No relationships found.")
			return nil
		}

		for _, rel := range rels {
			fmt.Printf("%d\t%s\t%s\t%d -> %d\t[%s]\n",
				rel.ID, rel.Name, rel.Type, rel.FromSiteID, rel.ToSiteID, rel.Status)
		}
		fmt.Printf("\n%d of %d relationship(s)\n", len(rels), total)

		return nil
	})
}

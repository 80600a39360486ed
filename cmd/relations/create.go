package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/relations-core/internal/domain/entities"
)

func newCreateCmd() *cobra.Command {
	var (
		name   string
		status string
	)

	cmd := &cobra.Command{
		Use:   "create <type> <from-site-id> <to-site-id>",
		Short: "Create a relationship between two sites",
		Long: `Creates a relationship link between two sites.

Examples:
  relations create mirror 3 7
  relations create syndication 1 4 --name "news feed" --status inactive`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, name, status)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the relationship")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default active): "+strings.Join(validStatuses, ", "))

	return cmd
}

func runCreate(cmd *cobra.Command, args []string, name, status string) error {
	ctx := cmd.Context()

	fromID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid from-site-id %q", args[1])
	}
	toID, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid to-site-id %q", args[2])
	}

	return withDeps(func(d *Deps) error {
		rel, err := d.Service.Create(ctx, entities.RelationshipParams{
			Name:       name,
			Type:       args[0],
			FromSiteID: fromID,
			ToSiteID:   toID,
			Status:     entities.Status(status),
		})
		if err != nil {
			return fmt.Errorf("creating relationship: %w", err)
		}

		fmt.Printf("Created relationship %d: %d -[%s]-> %d [%s]\n",
			rel.ID, rel.FromSiteID, rel.Type, rel.ToSiteID, rel.Status)
		return nil
	})
}

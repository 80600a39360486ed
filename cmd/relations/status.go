package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/relations-core/internal/domain/entities"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <relationship-id> <status>",
		Short: "Change a relationship's status",
		Long: `Transitions a relationship to the given status.

Valid statuses: ` + strings.Join(validStatuses, ", ") + `

Examples:
  relations status 3 inactive
  relations status 3 active`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid relationship id %q", args[0])
	}

	return withDeps(func(d *Deps) error {
		rel, err := d.Service.SetStatus(ctx, id, entities.Status(args[1]))
		if err != nil {
			return fmt.Errorf("setting status: %w", err)
		}

		fmt.Printf("Relationship %d is now %s\n", rel.ID, rel.Status)
		return nil
	})
}

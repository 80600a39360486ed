package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ersonp/relations-core/internal/domain/entities"
)

// RelationshipIDs extracts the target relationship ids from a request. In
// single mode it reads the scalar relationship_id field; otherwise it reads
// the array-valued relationship_ids field. Non-numeric, zero, and negative
// entries are dropped, duplicates keep their first occurrence, and order is
// preserved. An empty result means "no targets" and is never an error.
func RelationshipIDs(form url.Values, single bool) []int64 {
	if single {
		return parseIDList([]string{form.Get(FieldID)})
	}
	return parseIDList(form[FieldIDs])
}

// ProcessedIDs extracts the processed id list a redirect carries back to the
// list page, with the same sanitization rules as the target ids.
func ProcessedIDs(query url.Values) []int64 {
	return parseIDList(query["processed"])
}

// parseIDList filters raw values down to a duplicate-free, order-preserving
// list of positive integers.
func parseIDList(raw []string) []int64 {
	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ParseParams reads the relationship attribute payload an add or edit form
// submits.
func ParseParams(form url.Values) entities.RelationshipParams {
	fromID, _ := strconv.ParseInt(strings.TrimSpace(form.Get("relationship_from_site")), 10, 64)
	toID, _ := strconv.ParseInt(strings.TrimSpace(form.Get("relationship_to_site")), 10, 64)
	return entities.RelationshipParams{
		Name:       strings.TrimSpace(form.Get("relationship_name")),
		Type:       sanitizeKey(form.Get("relationship_type")),
		FromSiteID: fromID,
		ToSiteID:   toID,
		Status:     entities.Status(sanitizeKey(form.Get("relationship_status"))),
	}
}

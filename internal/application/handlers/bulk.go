package handlers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
	"github.com/ersonp/relations-core/internal/domain/services"
)

// ExtensionFunc handles an action symbol the engine doesn't recognize. It
// receives the sanitized target ids and returns the ids it processed.
type ExtensionFunc func(ctx context.Context, ids []int64) ([]int64, error)

// Result is the outcome of one admin action request. DidAction starts as the
// resolved action name and is overwritten by the code of the most recent
// per-id failure, so a mixed bulk run reports its last error while Processed
// still lists exactly the ids that succeeded.
type Result struct {
	// DidAction is the action name, or an error code if anything failed.
	DidAction string
	// TargetIDs is the sanitized id list the request asked to act on.
	TargetIDs []int64
	// Processed lists the ids the action completed for, in target order.
	Processed []int64
	// Domains lists the site ids freed by a delete action. Nil for other
	// actions; empty (not nil) for a delete that freed nothing.
	Domains []string
}

// ActionHandler orchestrates admin actions over the relationship service.
// Bulk status changes and deletes are best-effort loops that continue past
// individual failures; add and edit are single transactional units that stop
// at the first error. Unknown action symbols are delegated to registered
// extension handlers.
type ActionHandler struct {
	service    *services.RelationshipService
	auth       ports.Authorizer
	extensions map[string]ExtensionFunc
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(service *services.RelationshipService, auth ports.Authorizer) *ActionHandler {
	return &ActionHandler{
		service:    service,
		auth:       auth,
		extensions: make(map[string]ExtensionFunc),
	}
}

// Register installs an extension handler for an unrecognized action symbol.
// Registration happens at startup; Process never mutates the registry.
func (h *ActionHandler) Register(action string, fn ExtensionFunc) {
	h.extensions[sanitizeKey(action)] = fn
}

// Process resolves and executes the action a request asks for. It returns
// (nil, nil) when the request names no action, and an unauthorized error
// when the anti-forgery check fails, in which case nothing was touched. Any
// other outcome, including per-item failures, is reported in the Result.
func (h *ActionHandler) Process(ctx context.Context, form url.Values, session string) (*Result, error) {
	action := ResolveAction(form)
	if action == "" {
		return nil, nil
	}

	ids := RelationshipIDs(form, false)
	result := &Result{
		DidAction: action,
		TargetIDs: ids,
	}

	// The authorization gate is a hard precondition: it runs before any
	// per-id work, and a failure aborts with no side effects.
	if err := h.authorize(form, action, session); err != nil {
		return nil, err
	}

	switch action {
	case ActionActivate:
		h.setStatusEach(ctx, result, ids, entities.StatusActive)

	case ActionDeactivate:
		h.setStatusEach(ctx, result, ids, entities.StatusInactive)

	case ActionDelete:
		h.deleteEach(ctx, result, ids)

	case ActionAdd:
		rel, err := h.service.Create(ctx, ParseParams(form))
		if err != nil {
			result.DidAction = string(entities.CodeOf(err, entities.ErrCreateFailed))
			break
		}
		result.Processed = append(result.Processed, rel.ID)

	case ActionEdit:
		if len(ids) == 0 {
			result.DidAction = string(entities.ErrNotFound)
			break
		}
		rel, err := h.service.Update(ctx, ids[0], ParseParams(form))
		if err != nil {
			result.DidAction = string(entities.CodeOf(err, entities.ErrUpdateFailed))
			break
		}
		result.Processed = append(result.Processed, rel.ID)

	default:
		if fn, ok := h.extensions[action]; ok {
			processed, _ := fn(ctx, ids)
			result.Processed = append(result.Processed, processed...)
		}
	}

	if result.Processed == nil {
		result.Processed = []int64{}
	}
	return result, nil
}

// authorize checks the request token against the scope the resolved action
// requires. Unrecognized actions share the bulk scope.
func (h *ActionHandler) authorize(form url.Values, action, session string) error {
	scope := NonceBulk
	switch action {
	case ActionAdd:
		scope = NonceAdd
	case ActionEdit:
		scope = NonceEdit
	}
	if !h.auth.Check(form.Get(FieldToken), scope, session) {
		return entities.NewError(entities.ErrUnauthorized, "invalid token for "+scope)
	}
	return nil
}

// setStatusEach applies a status transition to every target id, continuing
// past failures and keeping the last failure's code.
func (h *ActionHandler) setStatusEach(ctx context.Context, result *Result, ids []int64, status entities.Status) {
	for _, id := range ids {
		if _, err := h.service.SetStatus(ctx, id, status); err != nil {
			result.DidAction = string(entities.CodeOf(err, entities.ErrUpdateFailed))
			continue
		}
		result.Processed = append(result.Processed, id)
	}
}

// deleteEach removes every target id, continuing past failures and
// collecting the site ids each deleted record freed.
func (h *ActionHandler) deleteEach(ctx context.Context, result *Result, ids []int64) {
	result.Domains = []string{}
	seen := make(map[string]bool)
	for _, id := range ids {
		rel, err := h.service.Delete(ctx, id)
		if err != nil {
			result.DidAction = string(entities.CodeOf(err, entities.ErrDeleteFailed))
			continue
		}
		result.Processed = append(result.Processed, id)
		for _, site := range []int64{rel.FromSiteID, rel.ToSiteID} {
			s := strconv.FormatInt(site, 10)
			if !seen[s] {
				seen[s] = true
				result.Domains = append(result.Domains, s)
			}
		}
	}
}

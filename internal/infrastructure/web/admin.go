package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ersonp/relations-core/internal/application/handlers"
	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
	"github.com/ersonp/relations-core/internal/infrastructure/auth"
)

// sessionCookie names the cookie carrying the opaque session id the nonce
// tokens are bound to.
const sessionCookie = "relations_session"

// defaultPerPage is the list page size when the request doesn't choose one.
const defaultPerPage = 50

// listResponse is the list page payload.
type listResponse struct {
	Relationships []entities.Relationship `json:"relationships"`
	Total         int                     `json:"total"`
	Notice        *handlers.Notice        `json:"notice,omitempty"`
	BulkToken     string                  `json:"bulk_token"`
}

// recordResponse is the single-record (edit page) payload.
type recordResponse struct {
	Relationship *entities.Relationship `json:"relationship"`
	EditToken    string                 `json:"edit_token"`
	AddToken     string                 `json:"add_token"`
}

// handleList serves the list page data: the filtered relationship listing,
// the notice for a just-completed action, and the bulk token the list form
// must submit.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	session := s.session(w, r)

	opts := ports.ListOptions{
		Search: query.Get("s"),
		Status: entities.Status(query.Get("status")),
		Type:   query.Get("type"),
		Limit:  defaultPerPage,
	}
	if perPage, err := strconv.Atoi(query.Get("per_page")); err == nil && perPage > 0 {
		opts.Limit = perPage
	}
	if page, err := strconv.Atoi(query.Get("paged")); err == nil && page > 1 {
		opts.Offset = (page - 1) * opts.Limit
	}

	rels, err := s.service.List(ctx, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	total, err := s.service.Count(ctx, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := listResponse{
		Relationships: rels,
		Total:         total,
		BulkToken:     s.auth.Issue(handlers.NonceBulk, session),
	}
	if didAction := query.Get("did_action"); didAction != "" {
		resp.Notice = handlers.BuildNotice(didAction, handlers.ProcessedIDs(query))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleGet serves the data behind the edit page for one relationship,
// along with the tokens its forms submit.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)

	ids := handlers.RelationshipIDs(url.Values{handlers.FieldID: {r.PathValue("id")}}, true)
	if len(ids) == 0 {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": string(entities.ErrNotFound)})
		return
	}

	rel, err := s.service.Lookup(r.Context(), ids[0])
	if err != nil {
		if entities.IsCode(err, entities.ErrNotFound) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"error": string(entities.ErrNotFound)})
			return
		}
		s.fail(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, recordResponse{
		Relationship: rel,
		EditToken:    s.auth.Issue(handlers.NonceEdit, session),
		AddToken:     s.auth.Issue(handlers.NonceAdd, session),
	})
}

// handleAction runs the action a submitted form asks for and redirects back
// to the list page with the outcome. Nothing is written after the redirect.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed form"})
		return
	}
	session := s.session(w, r)

	result, err := s.actions.Process(r.Context(), r.Form, session)
	if err != nil {
		if entities.IsCode(err, entities.ErrUnauthorized) {
			s.logger.Warn("action rejected", "error", err)
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": string(entities.ErrUnauthorized)})
			return
		}
		s.fail(w, r, err)
		return
	}

	// No action requested: hand control back to the list page unchanged.
	if result == nil {
		http.Redirect(w, r, handlers.ReturnPath(r.Referer()), http.StatusSeeOther)
		return
	}

	s.logger.Info("action processed",
		"action", result.DidAction,
		"targets", len(result.TargetIDs),
		"processed", len(result.Processed),
	)

	http.Redirect(w, r, handlers.RedirectURL(result, r.Referer()), http.StatusSeeOther)
}

// session returns the request's session id, minting and setting one when the
// client doesn't have a cookie yet.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	session := auth.NewSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

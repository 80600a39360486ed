package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

// AdminPath is the canonical admin URL for the relationships list page,
// used when a request carries no usable referrer.
const AdminPath = "/admin/relationships"

// AdminPage is the page symbol echoed on every redirect.
const AdminPage = "manage_relationships"

// strippedParams are the result parameters of a previous action. They are
// removed from the referrer before new ones are applied, so repeated actions
// never stack stale state.
var strippedParams = []string{"did_action", "processed", "relationship_ids", "domains", FieldToken}

// ReturnPath sanitizes a referring URL into a same-site redirect target.
// Only rooted relative URLs are accepted; anything naming a scheme or host
// is client-controlled and falls back to the canonical admin path.
func ReturnPath(referer string) string {
	return safeBase(referer).String()
}

func safeBase(referer string) *url.URL {
	base, err := url.Parse(referer)
	if err != nil || base.Scheme != "" || base.Host != "" || !strings.HasPrefix(base.Path, "/") {
		return &url.URL{Path: AdminPath}
	}
	// Browsers normalize backslashes in a Location to slashes, which can
	// turn a rooted path into a scheme-relative URL.
	if strings.Contains(base.Path, `\`) {
		return &url.URL{Path: AdminPath}
	}
	return base
}

// RedirectURL encodes an action result as the redirect target the browser is
// sent to. The base is the sanitized referring URL with any prior result
// parameters stripped, falling back to the canonical admin path.
func RedirectURL(result *Result, referer string) string {
	base := safeBase(referer)

	q := base.Query()
	for _, p := range strippedParams {
		q.Del(p)
	}

	for _, id := range result.TargetIDs {
		q.Add("relationship_ids", strconv.FormatInt(id, 10))
	}
	q.Set("did_action", result.DidAction)
	q.Set("page", AdminPage)
	for _, id := range result.Processed {
		q.Add("processed", strconv.FormatInt(id, 10))
	}
	for _, d := range result.Domains {
		q.Add("domains", d)
	}

	base.RawQuery = q.Encode()
	return base.String()
}

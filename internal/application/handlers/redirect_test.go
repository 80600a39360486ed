package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectURL_FromReferrer(t *testing.T) {
	result := &Result{
		DidAction: "activate",
		TargetIDs: []int64{3, 7},
		Processed: []int64{3, 7},
	}

	target := RedirectURL(result, "/admin/relationships?paged=2&status=inactive")

	u, err := url.Parse(target)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "/admin/relationships", u.Path)
	assert.Equal(t, "activate", q.Get("did_action"))
	assert.Equal(t, AdminPage, q.Get("page"))
	assert.Equal(t, []string{"3", "7"}, q["processed"])
	assert.Equal(t, []string{"3", "7"}, q["relationship_ids"])
	// Unrelated query state survives the round trip.
	assert.Equal(t, "2", q.Get("paged"))
	assert.Equal(t, "inactive", q.Get("status"))
}

func TestRedirectURL_StripsStaleResultParams(t *testing.T) {
	result := &Result{
		DidAction: "delete",
		TargetIDs: []int64{9},
		Processed: []int64{9},
		Domains:   []string{"90", "91"},
	}

	referer := "/admin/relationships?did_action=activate&processed=1&processed=2&relationship_ids=1&domains=5&_token=old"
	target := RedirectURL(result, referer)

	u, err := url.Parse(target)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "delete", q.Get("did_action"))
	assert.Equal(t, []string{"9"}, q["processed"])
	assert.Equal(t, []string{"9"}, q["relationship_ids"])
	assert.Equal(t, []string{"90", "91"}, q["domains"])
	assert.Empty(t, q.Get("_token"))
}

func TestRedirectURL_FallbackWithoutReferrer(t *testing.T) {
	result := &Result{DidAction: "deactivate", Processed: []int64{}}

	target := RedirectURL(result, "")

	u, err := url.Parse(target)
	require.NoError(t, err)
	assert.Equal(t, AdminPath, u.Path)
	assert.Equal(t, "deactivate", u.Query().Get("did_action"))
}

func TestRedirectURL_RejectsForeignReferrer(t *testing.T) {
	result := &Result{DidAction: "deactivate", Processed: []int64{1}}

	// Cross-host and unrooted referrers are not trusted as a redirect base.
	for _, referer := range []string{
		"https://evil.example/phish",
		"//evil.example/phish",
		"http://evil.example/admin/relationships",
		"relationships?paged=2",
		`/\evil.example/phish`,
	} {
		target := RedirectURL(result, referer)

		u, err := url.Parse(target)
		require.NoError(t, err)
		assert.Empty(t, u.Scheme, "referer %s", referer)
		assert.Empty(t, u.Host, "referer %s", referer)
		assert.Equal(t, AdminPath, u.Path, "referer %s", referer)
		assert.Equal(t, "deactivate", u.Query().Get("did_action"))
	}
}

func TestReturnPath(t *testing.T) {
	assert.Equal(t, "/admin/relationships?paged=2", ReturnPath("/admin/relationships?paged=2"))
	assert.Equal(t, AdminPath, ReturnPath(""))
	assert.Equal(t, AdminPath, ReturnPath("https://evil.example/phish"))
	assert.Equal(t, AdminPath, ReturnPath("//evil.example/phish"))
}

func TestRedirectURL_NoProcessed(t *testing.T) {
	result := &Result{DidAction: "create_failed", Processed: []int64{}}

	target := RedirectURL(result, "/admin/relationships")

	u, err := url.Parse(target)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "create_failed", q.Get("did_action"))
	assert.Empty(t, q["processed"])
}

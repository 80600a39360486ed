package ports

// Authorizer validates the anti-forgery token an admin form submits. Each
// action is tied to a scope string; a token issued for one scope never
// verifies against another. The bulk action processor consults this before
// any per-id work, so a failed check means no side effects at all.
type Authorizer interface {
	// Issue mints a token for the given scope and session.
	Issue(scope, session string) string

	// Check reports whether token is valid for the given scope and session.
	Check(token, scope, session string) bool
}

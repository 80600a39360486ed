package mocks

// Authorizer is a mock implementation of ports.Authorizer. It accepts any
// token unless Fail is set, and records the scopes that were checked so
// tests can assert the authorization gate ran before any per-id work.
type Authorizer struct {
	Fail          bool
	CheckedScopes []string
}

// NewAuthorizer creates a new mock Authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Issue mints a token for the given scope and session.
func (m *Authorizer) Issue(scope, _ string) string {
	return "token-" + scope
}

// Check reports whether token is valid for the given scope and session.
func (m *Authorizer) Check(_, scope, _ string) bool {
	m.CheckedScopes = append(m.CheckedScopes, scope)
	return !m.Fail
}

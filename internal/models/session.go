package models

// Session is an authenticated context. It exists only while the user is
// logged in; the durable copy of Token/Username lives in the credential
// store. Epoch changes whenever a session is established or torn down,
// so responses issued under an older session can be recognized and
// discarded.
type Session struct {
	Token    string
	Username string
	Epoch    string
}

// Active reports whether the session carries a token.
func (s Session) Active() bool {
	return s.Token != ""
}

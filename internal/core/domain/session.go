package domain

// SessionData is the server-side state bound to a session id.
// UserID is zero for anonymous visitors.
type SessionData struct {
	UserID  uint     `json:"user_id,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
}

package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse mirrors the login/verify endpoints' session payload.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// StatusResponse mirrors simple acknowledgment bodies ({"status":"ok"}).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

package models

// TokenStatusResponse reports whether an API token is stored.
type TokenStatusResponse struct {
	Configured bool `json:"configured"`
}

// SetTokenRequest carries a new Cloudflare API token.
type SetTokenRequest struct {
	Token string `json:"token"`
}

// TokenVerifyResponse reports the result of a token verification.
type TokenVerifyResponse struct {
	Active bool `json:"active"`
}

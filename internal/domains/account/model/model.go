package model

// StoredToken is the commerce platform access token cached per customer. The
// platform token never leaves the service; clients only ever see our JWTs.
type StoredToken struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

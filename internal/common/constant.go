package common

// AuthTokenHeaderName is the HTTP header used to carry the auth token on
// requests to authenticated endpoints.
const AuthTokenHeaderName = "auth-token"

// TemporaryPasswordLength and TemporaryPasswordCharset describe passwords
// generated by the forgot-password flow.
const (
	TemporaryPasswordLength  = 8
	TemporaryPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

package models

// ClaimsPayload is the decoded body of an access token. Custom holds the
// namespaced application claims, for example "identity".
type ClaimsPayload struct {
	Audience string
	Expiry   int64
	Subject  string
	Custom   map[string]any
}

// Identity returns the "identity" custom claim, or "" when absent.
func (c *ClaimsPayload) Identity() string {
	if c == nil {
		return ""
	}
	s, _ := c.Custom["identity"].(string)
	return s
}

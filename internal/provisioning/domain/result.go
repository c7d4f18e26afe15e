// Package domain defines the outcome of pushing an identity's entitlements to a
// downstream target system.
package domain

// Result describes one provisioning attempt. A skipped attempt is successful
// and performed no I/O.
type Result struct {
	Target              string `json:"target"`
	Success             bool   `json:"success"`
	Skipped             bool   `json:"skipped"`
	DownstreamAccountID string `json:"downstream_account_id,omitempty"`
	Error               string `json:"error,omitempty"`
}

// NewSkippedResult returns the result for a target the identity has no grant for.
func NewSkippedResult(target string) *Result {
	return &Result{Target: target, Success: true, Skipped: true}
}

// NewFailedResult returns a failed result carrying reason.
func NewFailedResult(target, reason string) *Result {
	return &Result{Target: target, Success: false, Error: reason}
}

// Account is the create-or-update request sent to the chat workspace. Email is
// the natural key of the downstream account.
type Account struct {
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DisplayName string   `json:"display_name"`
	Channels    []string `json:"channels"`
}

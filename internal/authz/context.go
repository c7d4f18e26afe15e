// Package authz gates write operations on the caller's role claim.
package authz

import (
	"context"
)

// roleKey is a context key type for storing the caller's role claim.
type roleKey struct{}

// WithRole stores the caller's role claim in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// GetRole retrieves the caller's role claim from the context.
// Returns ("", false) if the gate did not run or the claim was empty.
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey{}).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// Actor returns the value recorded as created_by and last_modified_by.
// An empty string lets the identity store fall back to its system actor.
func Actor(ctx context.Context) string {
	role, _ := GetRole(ctx)
	return role
}

// Package access decides who may record transactions. The cash book does not
// authenticate anyone itself: callers identify the acting principal and a
// Policy answers whether that principal can write.
package access

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthorized is returned when a principal may not record transactions.
var ErrUnauthorized = errors.New("access: unauthorized")

// Principal identifies the person or service performing an operation.
type Principal struct {
	Email string
}

// Policy reports whether a principal may record transactions. Read access is
// never restricted by a Policy.
type Policy interface {
	Allow(p Principal) bool
}

// AllowAll permits every principal. It is the default for a single-user cash
// book driven from the command line.
func AllowAll() Policy { return allowAll{} }

type allowAll struct{}

func (allowAll) Allow(Principal) bool { return true }

// AllowList permits exactly the given principals, compared by email,
// case-insensitively.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds a write policy from a list of emails.
func NewAllowList(emails ...string) *AllowList {
	l := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			l.emails[e] = struct{}{}
		}
	}
	return l
}

// ParseAllowList builds a write policy from a comma-separated list of emails,
// the shape used in configuration. An empty list allows everyone.
func ParseAllowList(s string) Policy {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllowAll()
	}
	return NewAllowList(strings.Split(s, ",")...)
}

func (l *AllowList) Allow(p Principal) bool {
	_, ok := l.emails[strings.ToLower(strings.TrimSpace(p.Email))]
	return ok
}

// Check returns ErrUnauthorized when the policy rejects the principal.
func Check(policy Policy, p Principal) error {
	if policy == nil || policy.Allow(p) {
		return nil
	}
	return ErrUnauthorized
}

type principalContextKey struct{}

// ContextWithPrincipal attaches the acting principal to the context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, &p)
}

// PrincipalFromContext extracts the acting principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}
	v, ok := ctx.Value(principalContextKey{}).(*Principal)
	if !ok || v == nil {
		return Principal{}, false
	}
	return *v, true
}

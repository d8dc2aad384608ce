package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowAll(t *testing.T) {
	p := AllowAll()
	assert.True(t, p.Allow(Principal{Email: "anyone@example.com"}))
	assert.True(t, p.Allow(Principal{}))
}

func TestAllowList(t *testing.T) {
	p := NewAllowList("Owner@Example.com", " clerk@example.com ")

	assert.True(t, p.Allow(Principal{Email: "owner@example.com"}))
	assert.True(t, p.Allow(Principal{Email: "CLERK@example.com"}))
	assert.False(t, p.Allow(Principal{Email: "stranger@example.com"}))
	assert.False(t, p.Allow(Principal{}))
}

func TestParseAllowList(t *testing.T) {
	assert.True(t, ParseAllowList("").Allow(Principal{Email: "anyone"}))

	p := ParseAllowList("a@example.com, b@example.com")
	assert.True(t, p.Allow(Principal{Email: "a@example.com"}))
	assert.True(t, p.Allow(Principal{Email: "b@example.com"}))
	assert.False(t, p.Allow(Principal{Email: "c@example.com"}))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(nil, Principal{}))
	assert.NoError(t, Check(AllowAll(), Principal{}))
	assert.ErrorIs(t, Check(NewAllowList("a@example.com"), Principal{Email: "x"}), ErrUnauthorized)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithPrincipal(context.Background(), Principal{Email: "owner@example.com"})
	got, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "owner@example.com", got.Email)
}

package requestctx

import (
	"context"
	"testing"
)

func TestUserIDFromContextRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	got, ok := UserIDFromContext(ctx)
	if !ok || got != 42 {
		t.Fatalf("UserIDFromContext = %d, %v, want 42, true", got, ok)
	}
}

func TestUserIDFromContextEmpty(t *testing.T) {
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Fatalf("expected no user id")
	}
}

func TestUserIDFromContextNil(t *testing.T) {
	//nolint:staticcheck // nil context is handled on purpose
	if _, ok := UserIDFromContext(nil); ok {
		t.Fatalf("expected no user id for nil context")
	}
}

func TestWithUserIDNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is handled on purpose
	ctx := WithUserID(nil, 99)
	if got, _ := UserIDFromContext(ctx); got != 99 {
		t.Fatalf("UserIDFromContext = %d, want 99", got)
	}
}

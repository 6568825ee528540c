package settings

import (
	"context"
	"testing"
)

func TestIntoContextAndFromContext(t *testing.T) {
	run := NewCliParams()
	ctx := IntoContext(context.Background(), run)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("FromContext should find the stored Run")
	}
	if got != run {
		t.Error("FromContext should return the same Run instance")
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("FromContext should report absence on an empty context")
	}
}

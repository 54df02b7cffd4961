package http_test

import (
	"context"
	"testing"
)

// testContext stands in for t.Context (Go 1.24+): a context cancelled when the test ends.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

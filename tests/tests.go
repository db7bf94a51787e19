// Package tests carries per-test metadata (a unique id and the test name)
// through context.Context, so helpers and log lines can be correlated with
// the test that produced them.
//
//	func TestMyFeature(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    id, _ := tests.GetTestId(ctx) // "test-<uuid>"
//	}
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// GetUniqueContext returns t.Context() extended with a unique test id
// ("test-" followed by a random UUID) and the test name.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(t.Context(), testIdKey, "test-"+uuid.New().String())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestId returns the unique test id stored by GetUniqueContext.
func GetTestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(testIdKey).(string)

	return id, ok
}

// GetTestName returns the test name stored by GetUniqueContext.
func GetTestName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(testNameKey).(string)

	return name, ok
}

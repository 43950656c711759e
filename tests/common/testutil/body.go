//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a decoded JSON request body in place.
type Mutation func(t *testing.T, body map[string]any)

// JSONBody round-trips v through encoding/json so tests can break a valid
// request the way a client would.
func JSONBody(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		mut(t, body)
	}
	return body
}

// Set writes value at a dotted path such as "guestInfo.email".
func Set(path string, value any) Mutation {
	return func(t *testing.T, body map[string]any) {
		t.Helper()
		parent, key := walk(t, body, path)
		parent[key] = value
	}
}

// Without removes the key at a dotted path.
func Without(path string) Mutation {
	return func(t *testing.T, body map[string]any) {
		t.Helper()
		parent, key := walk(t, body, path)
		delete(parent, key)
	}
}

func walk(t *testing.T, body map[string]any, path string) (map[string]any, string) {
	t.Helper()
	keys := strings.Split(path, ".")
	node := body
	for _, k := range keys[:len(keys)-1] {
		next, ok := node[k].(map[string]any)
		require.Truef(t, ok, "%s is not an object in the request body", k)
		node = next
	}
	return node, keys[len(keys)-1]
}

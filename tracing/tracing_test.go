package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("uidkey", "0.0.1", fname))

	_, span := StartSpan(context.Background(), "test")
	span.WithAttributes(map[string]string{"k": "v"}).WithInt("entries", 3)
	EndSpan(span, nil)

	_, failed := StartSpan(context.Background(), "failed")
	EndSpan(failed, errors.New("boom"))

	second := filepath.Join(t.TempDir(), "second.txt")
	require.NoError(t, Init("uidkey", "0.0.2", second))
	_, statErr := os.Stat(second)
	assert.True(t, os.IsNotExist(statErr))
	require.NoError(t, Init("uidkey", "0.0.2", fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"test"`)
	assert.Contains(t, string(data), "boom")
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(nil, nil)
}

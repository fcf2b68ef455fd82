// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerInContext(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		ctx      func() context.Context
		expected func(Logger) Logger
	}{
		"nil context return null logger": {
			ctx:      func() context.Context { return nil },
			expected: func(Logger) Logger { return nullLogger },
		},
		"empty context return null logger": {
			ctx:      func() context.Context { return context.Background() },
			expected: func(Logger) Logger { return nullLogger },
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected(nil), FromContext(test.ctx()))
		})
	}

	t.Run("context with a logger return that logger", func(t *testing.T) {
		t.Parallel()

		log := NewLogger(io.Discard)
		ctx := WithContext(t.Context(), log)
		assert.Same(t, log, FromContext(ctx))
	})
}

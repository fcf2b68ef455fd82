// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	Version = "1.2.3"
	assert.Equal(t, "todo-exporter/1.2.3", UserAgent())
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/mia-platform/todo-exporter/internal/destination"
)

var _ destination.Writer = &FakeDestination{}

// FakeDestination keeps every written export in memory.
type FakeDestination struct {
	tb testing.TB

	Err         error
	WrittenData []*destination.Data
}

func NewFakeDestination(tb testing.TB) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb}
}

// NewFailingDestination returns a FakeDestination whose Write always returns err.
func NewFailingDestination(tb testing.TB, err error) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb, Err: err}
}

func (f *FakeDestination) Write(_ context.Context, data *destination.Data) error {
	f.tb.Helper()
	if f.Err != nil {
		return f.Err
	}

	f.WrittenData = append(f.WrittenData, data)
	return nil
}

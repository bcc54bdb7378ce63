// Package hooks provides default hook implementations.
package hooks

import (
	"context"

	"github.com/arloliu/hype/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, uint64, int) error    = (*NopHooks)(nil).OnElementAssigned
	_ func(context.Context, types.RunStats) error = (*NopHooks)(nil).OnStreamCompleted
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnElementAssigned: h.OnElementAssigned,
		OnStreamCompleted: h.OnStreamCompleted,
	}
}

// Fill returns hooks with every nil callback replaced by its no-op counterpart.
//
// Parameters:
//   - h: User hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks with all callbacks set
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnElementAssigned != nil {
		out.OnElementAssigned = h.OnElementAssigned
	}
	if h.OnStreamCompleted != nil {
		out.OnStreamCompleted = h.OnStreamCompleted
	}

	return out
}

// OnElementAssigned is a no-op implementation.
func (h *NopHooks) OnElementAssigned(_ context.Context, _ uint64, _ int) error {
	return nil
}

// OnStreamCompleted is a no-op implementation.
func (h *NopHooks) OnStreamCompleted(_ context.Context, _ types.RunStats) error {
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import "context"

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys used elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CtxKey is the key under which the request origin is stored.
var CtxKey = contextKey("origin")

// NewContext returns a copy of ctx carrying o.
func NewContext(ctx context.Context, o Origin) context.Context {
	return context.WithValue(ctx, CtxKey, o)
}

// FromContext retrieves the origin stored by [NewContext].
//
// ok is false when no origin was stored or the stored origin is zero.
func FromContext(ctx context.Context) (Origin, bool) {
	o, ok := ctx.Value(CtxKey).(Origin)
	if !ok || o.IsZero() {
		return Origin{}, false
	}
	return o, true
}

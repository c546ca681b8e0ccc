// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backendconfig resolves where a frontend sends its backend requests.
//
// A [Config] is built once from the origin of the execution context and is
// immutable afterwards, so a single value can be shared by any number of
// goroutines. Callers receive it explicitly (constructor arguments, service
// fields) instead of reaching for a process-wide singleton.
package backendconfig

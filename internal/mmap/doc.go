// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmap exposes a config source as a read-only byte slice, memory
// mapped where the platform supports it.
package mmap

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

// go-sqlite3 cannot produce errors without cgo.
func mattnErrorCode(error) (int, bool) {
	return 0, false
}

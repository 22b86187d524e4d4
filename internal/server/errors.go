// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoWebHandler    = errors.New("time tracker web handler is not configured")
	errNoListenAddress = errors.New("time tracker listen address is empty, set ADDRESS")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation.
//
// Configuration is assembled from the following sources. A field set by an
// earlier source wins over later ones:
//  1. Environment variables (after an optional .env file has been loaded)
//  2. Command-line flags
//  3. JSON config file named by CONFIG, -c or -config
//
// Fields left empty by every source receive defaults; only the session
// sign key is mandatory.
package config

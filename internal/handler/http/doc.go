// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web front end of the time tracker.
//
// It renders server-side HTML pages with html/template, keeps the login
// session in a signed cookie and reports form outcomes through flash
// messages. Trace ids, access logging, compression, panic recovery and
// the session and admin gates are chi middleware applied before requests
// reach the service layer.
package http

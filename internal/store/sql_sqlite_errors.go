// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	moderncsqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteErrorClassifier classifies errors of both SQLite drivers by their
// extended result code.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var moderncErr *moderncsqlite.Error
	if errors.As(err, &moderncErr) {
		return ClassifySQLiteCode(moderncErr.Code())
	}

	if code, ok := mattnErrorCode(err); ok {
		return ClassifySQLiteCode(code)
	}

	return Unclassified
}

// ClassifySQLiteCode maps a SQLite extended result code to an
// [ErrorClassification].
func ClassifySQLiteCode(code int) ErrorClassification {
	switch code {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE,
		sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation

	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation

	case sqlite3lib.SQLITE_CONSTRAINT_CHECK,
		sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
		return CheckViolation
	}

	// Primary result code lives in the low byte.
	switch code & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return Retryable
	}

	return Unclassified
}

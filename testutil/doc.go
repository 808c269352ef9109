// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil holds shared test fixtures: a throwaway sqlite
// database with the full schema, row factories and request helpers.
package testutil

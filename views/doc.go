// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the server-side HTML pages embedded from
// templates/. Every page is parsed together with layout.html and
// receives one of the models page types.
package views

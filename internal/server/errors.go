// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when there is no handler or no
// listen address to serve.
var errNoHTTPServer = errors.New("no HTTP server to run: handler or address is missing")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no service
// container. Transport handlers cannot serve anything without one, so this
// is treated as a fatal misconfiguration at startup.
var errNoServices = errors.New("no services are provided to handlers")

package app

import "errors"

var errNilConfig = errors.New("application config is nil")

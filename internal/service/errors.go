package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	// ErrNameIsNotSpecified is returned by [NewAppInfoService] when the
	// application name is empty.
	ErrNameIsNotSpecified = errors.New("app name is not specified")
)

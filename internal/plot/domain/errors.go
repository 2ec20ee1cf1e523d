package domain

import "errors"

var (
	ErrPlotNotFound         = errors.New("plot not found")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrGatewayNotConfigured = errors.New("data gateway is not configured")
	ErrMediaNotConfigured   = errors.New("media store is not configured")
	ErrInvalidPlotData      = errors.New("invalid plot data")
)

package user

import "errors"

var (
	ErrManagerAccessRequired    = errors.New("manager role required")
	ErrHeadOfficeAccessRequired = errors.New("head office role required")
	ErrStoreScopeDenied         = errors.New("record is outside your store scope")
	ErrInvalidClaims            = errors.New("token claims are missing or invalid")
)

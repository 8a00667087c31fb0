package config

import "time"

type ctxKey string

const (
	UidKey   ctxKey = "uid"
	EmailKey ctxKey = "email"
	RoleKey  ctxKey = "role"
)

const DefaultCacheTime = time.Hour

const (
	RefreshCookieName   = "refreshToken"
	AccessTokenDuration = time.Minute * 15
)

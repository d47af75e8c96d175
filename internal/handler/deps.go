package handler

import (
	"ysocial/internal/app/storage"
	"ysocial/internal/app/user"
	"ysocial/internal/configs"
	"ysocial/internal/pkg/auth/jwt"
	"ysocial/internal/pkg/metrics"
)

// AppDeps carries everything the HTTP layer needs. Storage is nil when media
// storage is not configured.
type AppDeps struct {
	Config         *configs.AppConfig
	Users          *user.Service
	Tokens         jwt.Verifier
	StorageService storage.StorageService
	Metrics        *metrics.Collector
}

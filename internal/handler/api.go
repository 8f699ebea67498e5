package handler

import (
	"github.com/threadcraft/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	auth      *service.AuthService
	sections  *service.SectionService
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	assets := service.NewAssetService(uploadDir)

	return &API{
		db:        gdb,
		auth:      service.NewAuthService(gdb),
		sections:  service.NewSectionService(gdb, assets),
		uploadURL: uploadURL,
	}
}

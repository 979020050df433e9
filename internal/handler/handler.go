package handler

import (
	"gorm.io/gorm"

	"gameregistry/backend/internal/repository"
)

// Handler bundles the repositories the HTTP layer works against.
type Handler struct {
	Servers *repository.ServerRepo
	Regions *repository.RegionRepo
}

func New(db *gorm.DB) *Handler {
	return &Handler{
		Servers: repository.NewServerRepo(db),
		Regions: repository.NewRegionRepo(db),
	}
}

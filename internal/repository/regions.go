package repository

import (
	"sort"

	"gorm.io/gorm"

	"gameregistry/backend/internal/models"
)

// RegionRepo wraps the regions table.
type RegionRepo struct {
	db *gorm.DB
}

func NewRegionRepo(db *gorm.DB) *RegionRepo {
	return &RegionRepo{db: db}
}

// List returns every region row. Row order is whatever the database gives.
func (r *RegionRepo) List() ([]models.Region, error) {
	regions := make([]models.Region, 0)
	if err := r.db.Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

// Insert adds a region. A duplicate name surfaces the driver's unique
// violation unchanged.
func (r *RegionRepo) Insert(region *models.Region) error {
	return r.db.Create(region).Error
}

// Missing loads the full set of region names once and returns the sorted,
// deduplicated subset of candidates the table does not contain. An empty
// candidate list trivially passes. This is a snapshot check: nothing stops
// a region disappearing between the check and a later write.
func (r *RegionRepo) Missing(candidates ...string) ([]string, error) {
	var names []string
	if err := r.db.Model(&models.Region{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	seen := make(map[string]struct{}, len(candidates))
	var missing []string
	for _, c := range candidates {
		if _, ok := known[c]; ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		missing = append(missing, c)
	}
	sort.Strings(missing)
	return missing, nil
}

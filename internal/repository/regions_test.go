package repository

import (
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gameregistry/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection, or each pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Region{}, &models.GameServer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRegions(t *testing.T, repo *RegionRepo, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := repo.Insert(&models.Region{Name: name}); err != nil {
			t.Fatalf("insert region %s: %v", name, err)
		}
	}
}

func TestMissingEmptyCandidates(t *testing.T) {
	repo := NewRegionRepo(newTestDB(t))

	missing, err := repo.Missing()
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}
}

func TestMissingAllPresent(t *testing.T) {
	repo := NewRegionRepo(newTestDB(t))
	seedRegions(t, repo, "us-east", "eu-west")

	missing, err := repo.Missing("us-east", "eu-west", "us-east")
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}
}

func TestMissingReportsAbsentSortedAndDeduplicated(t *testing.T) {
	repo := NewRegionRepo(newTestDB(t))
	seedRegions(t, repo, "us-east")

	missing, err := repo.Missing("mars", "atlantis", "mars", "us-east")
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if want := []string{"atlantis", "mars"}; !reflect.DeepEqual(missing, want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
}

func TestInsertAssignsIDAndList(t *testing.T) {
	repo := NewRegionRepo(newTestDB(t))

	region := models.Region{Name: "us-east"}
	if err := repo.Insert(&region); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if region.ID == 0 {
		t.Fatal("insert did not assign an id")
	}

	regions, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regions) != 1 || regions[0].Name != "us-east" {
		t.Fatalf("list = %+v", regions)
	}
}

func TestInsertDuplicateNameFails(t *testing.T) {
	repo := NewRegionRepo(newTestDB(t))
	seedRegions(t, repo, "us-east")

	err := repo.Insert(&models.Region{Name: "us-east"})
	if err == nil {
		t.Fatal("duplicate region name did not fail")
	}

	regions, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("duplicate insert changed the table: %+v", regions)
	}
}

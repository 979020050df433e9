package repository

import (
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"gameregistry/backend/internal/models"
)

func i32(v int32) *int32 { return &v }

func seedServer(t *testing.T, repo *ServerRepo, name, region, gameType string) *models.GameServer {
	t.Helper()
	server := models.GameServer{
		Name:     name,
		Region:   region,
		GameType: gameType,
		IP:       "10.0.0.1",
		MaxUsers: 64,
		Tags:     models.StringArray{"pvp"},
	}
	if err := repo.Insert(&server); err != nil {
		t.Fatalf("insert server %s: %v", name, err)
	}
	return &server
}

func TestInsertForcesCounterDefaults(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))

	server := models.GameServer{
		Name:                "alpha",
		Region:              "us-east",
		GameType:            "ffa",
		IP:                  "10.0.0.1",
		MaxUsers:            64,
		CurrentUsers:        42,
		CurrentPremiumUsers: i32(9),
		MaxPremiumUsers:     i32(8),
		Tags:                models.StringArray{"pvp", "ranked"},
	}
	if err := repo.Insert(&server); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if server.ID == 0 {
		t.Fatal("insert did not assign an id")
	}

	loaded, err := repo.Load(server.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CurrentUsers != 0 {
		t.Errorf("current_users = %d, want 0", loaded.CurrentUsers)
	}
	if loaded.CurrentPremiumUsers != nil {
		t.Errorf("current_premium_users = %v, want nil", loaded.CurrentPremiumUsers)
	}
	if loaded.MaxPremiumUsers == nil || *loaded.MaxPremiumUsers != 8 {
		t.Errorf("max_premium_users = %v, want 8", loaded.MaxPremiumUsers)
	}
	if !reflect.DeepEqual(loaded.Tags, models.StringArray{"pvp", "ranked"}) {
		t.Errorf("tags = %v", loaded.Tags)
	}
}

func TestInsertNilTagsStoredAsEmpty(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))

	server := models.GameServer{Name: "alpha", Region: "us-east", GameType: "ffa", IP: "10.0.0.1", MaxUsers: 64}
	if err := repo.Insert(&server); err != nil {
		t.Fatalf("insert: %v", err)
	}

	loaded, err := repo.Load(server.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Tags == nil || len(loaded.Tags) != 0 {
		t.Fatalf("tags = %#v, want empty non-nil", loaded.Tags)
	}
}

func TestLoadMissingIsRecordNotFound(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))

	_, err := repo.Load(999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUpdateWritesWholeRow(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))
	server := seedServer(t, repo, "alpha", "us-east", "ffa")

	server.Name = "alpha2"
	server.MaxUsers = 128
	server.Tags = models.StringArray{"casual"}
	if err := repo.Update(server); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := repo.Load(server.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "alpha2" || loaded.MaxUsers != 128 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Tags, models.StringArray{"casual"}) {
		t.Fatalf("tags = %v, want [casual]", loaded.Tags)
	}
	if loaded.Region != "us-east" || loaded.IP != "10.0.0.1" {
		t.Fatalf("untouched fields changed: %+v", loaded)
	}
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))
	server := seedServer(t, repo, "alpha", "us-east", "ffa")

	affected, err := repo.Delete(server.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	affected, err = repo.Delete(server.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}
}

func TestSearchFilterComposition(t *testing.T) {
	repo := NewServerRepo(newTestDB(t))
	seedServer(t, repo, "alpha", "us-east", "ffa")
	seedServer(t, repo, "beta", "us-east", "tdm")
	seedServer(t, repo, "gamma", "eu-west", "ffa")

	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		region   *string
		gameType *string
		want     []string
	}{
		{"no filters", nil, nil, []string{"alpha", "beta", "gamma"}},
		{"region only", str("us-east"), nil, []string{"alpha", "beta"}},
		{"game type only", nil, str("ffa"), []string{"alpha", "gamma"}},
		{"both", str("us-east"), str("ffa"), []string{"alpha"}},
		{"no match", str("eu-west"), str("tdm"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			servers, err := repo.Search(tt.region, tt.gameType)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			got := make([]string, 0, len(servers))
			for _, s := range servers {
				got = append(got, s.Name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

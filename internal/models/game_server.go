package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringArray stores an ordered list of strings in a Postgres text[] column.
// On other dialects (the in-memory test database) it falls back to a plain
// text column holding the array literal.
type StringArray pq.StringArray

func (a *StringArray) Scan(src any) error { return (*pq.StringArray)(a).Scan(src) }

func (a StringArray) Value() (driver.Value, error) { return pq.StringArray(a).Value() }

func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// GameServer mirrors one row of the game_servers table.
type GameServer struct {
	ID                  int32       `gorm:"primaryKey" json:"id"`
	Name                string      `gorm:"size:255;not null" json:"name"`
	Region              string      `gorm:"size:255;not null" json:"region"`
	GameType            string      `gorm:"size:255;not null" json:"game_type"`
	IP                  string      `gorm:"column:ip;size:255;not null" json:"ip"`
	MaxUsers            int32       `gorm:"not null" json:"max_users"`
	CurrentUsers        int32       `gorm:"not null;default:0" json:"current_users"`
	CurrentPremiumUsers *int32      `json:"current_premium_users"`
	MaxPremiumUsers     *int32      `json:"max_premium_users"`
	Tags                StringArray `gorm:"not null" json:"tags"`
}

// UpdatedGameServer is a sparse patch: only the fields present in the
// request body are non-nil, and only those overwrite the loaded row.
type UpdatedGameServer struct {
	Name            *string   `json:"name"`
	Region          *string   `json:"region"`
	GameType        *string   `json:"game_type"`
	IP              *string   `json:"ip"`
	MaxUsers        *int32    `json:"max_users"`
	MaxPremiumUsers *int32    `json:"max_premium_users"`
	Tags            *[]string `json:"tags"`
}

// Apply copies the present fields of the patch onto the server. The id and
// the user counters are not reachable through a patch. Tags are replaced
// wholesale, never merged.
func (s *GameServer) Apply(patch UpdatedGameServer) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Region != nil {
		s.Region = *patch.Region
	}
	if patch.GameType != nil {
		s.GameType = *patch.GameType
	}
	if patch.IP != nil {
		s.IP = *patch.IP
	}
	if patch.MaxUsers != nil {
		s.MaxUsers = *patch.MaxUsers
	}
	if patch.MaxPremiumUsers != nil {
		v := *patch.MaxPremiumUsers
		s.MaxPremiumUsers = &v
	}
	if patch.Tags != nil {
		s.Tags = StringArray(*patch.Tags)
	}
}

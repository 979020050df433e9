package repository

import (
	"gorm.io/gorm"

	"gameregistry/backend/internal/models"
)

// ServerRepo wraps the game_servers table.
type ServerRepo struct {
	db *gorm.DB
}

func NewServerRepo(db *gorm.DB) *ServerRepo {
	return &ServerRepo{db: db}
}

// List returns every server row. Row order is whatever the database gives.
func (r *ServerRepo) List() ([]models.GameServer, error) {
	servers := make([]models.GameServer, 0)
	if err := r.db.Find(&servers).Error; err != nil {
		return nil, err
	}
	return servers, nil
}

// Insert stores a new server and fills in its assigned id. The user
// counters are server-controlled: current_users starts at 0 and
// current_premium_users at NULL no matter what the caller put in.
func (r *ServerRepo) Insert(server *models.GameServer) error {
	server.CurrentUsers = 0
	server.CurrentPremiumUsers = nil
	if server.Tags == nil {
		server.Tags = models.StringArray{}
	}
	return r.db.Create(server).Error
}

// Load fetches one server by id. A missing row comes back as
// gorm.ErrRecordNotFound.
func (r *ServerRepo) Load(id int32) (*models.GameServer, error) {
	var server models.GameServer
	if err := r.db.First(&server, id).Error; err != nil {
		return nil, err
	}
	return &server, nil
}

// Update writes the whole row back.
func (r *ServerRepo) Update(server *models.GameServer) error {
	return r.db.Save(server).Error
}

// Delete removes a server by id and reports how many rows went away.
func (r *ServerRepo) Delete(id int32) (int64, error) {
	result := r.db.Delete(&models.GameServer{}, id)
	return result.RowsAffected, result.Error
}

// Search composes equality filters for whichever of the two criteria are
// present. Both absent returns every row.
func (r *ServerRepo) Search(region, gameType *string) ([]models.GameServer, error) {
	query := r.db.Model(&models.GameServer{})
	if region != nil {
		query = query.Where("region = ?", *region)
	}
	if gameType != nil {
		query = query.Where("game_type = ?", *gameType)
	}

	servers := make([]models.GameServer, 0)
	if err := query.Find(&servers).Error; err != nil {
		return nil, err
	}
	return servers, nil
}

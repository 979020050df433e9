package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gameregistry/backend/internal/models"
)

type NewServerInput struct {
	Name            string   `json:"name" binding:"required"`
	Region          string   `json:"region" binding:"required"`
	GameType        string   `json:"game_type" binding:"required"`
	IP              string   `json:"ip" binding:"required"`
	MaxUsers        *int32   `json:"max_users" binding:"required"`
	MaxPremiumUsers *int32   `json:"max_premium_users"`
	Tags            []string `json:"tags"`
}

type SearchServersInput struct {
	Region   *string `json:"region"`
	GameType *string `json:"game_type"`
}

// GetAllServers godoc
// @Summary      List all game servers
// @Description  Retrieves every registered game server.
// @Tags         servers
// @Produce      json
// @Success      200  {object}  ListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /server/all [get]
func (h *Handler) GetAllServers(c *gin.Context) {
	servers, err := h.Servers.List()
	if err != nil {
		log.Printf("Could not execute query in GetAllServers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve servers"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{Results: servers, Size: len(servers)})
}

// SearchServers godoc
// @Summary      Search game servers
// @Description  Filters servers by region and/or game type; both filters are optional and conjoined when both present. A region filter naming an unknown region is rejected.
// @Tags         servers
// @Accept       json
// @Produce      json
// @Param        input body SearchServersInput true "Search filters"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /server/search [post]
func (h *Handler) SearchServers(c *gin.Context) {
	var input SearchServersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Region != nil {
		missing, err := h.Regions.Missing(*input.Region)
		if err != nil {
			log.Printf("Region check failed in SearchServers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify region"})
			return
		}
		if len(missing) > 0 {
			c.JSON(http.StatusBadRequest, regionFailureBody(missing))
			return
		}
	}

	servers, err := h.Servers.Search(input.Region, input.GameType)
	if err != nil {
		log.Printf("Server search filter failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search servers"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{Results: servers, Size: len(servers)})
}

// AddServer godoc
// @Summary      Register a game server
// @Description  Registers a new game server. Its region must already exist in the regions table. current_users and current_premium_users are server-assigned.
// @Tags         servers
// @Accept       json
// @Produce      json
// @Param        input body NewServerInput true "Server Info"
// @Success      200  {string}  string "server `alpha` added!"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /server/add [post]
func (h *Handler) AddServer(c *gin.Context) {
	var input NewServerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missing, err := h.Regions.Missing(input.Region)
	if err != nil {
		log.Printf("Region check failed in AddServer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify region"})
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, regionFailureBody(missing))
		return
	}

	server := models.GameServer{
		Name:            input.Name,
		Region:          input.Region,
		GameType:        input.GameType,
		IP:              input.IP,
		MaxUsers:        *input.MaxUsers,
		MaxPremiumUsers: input.MaxPremiumUsers,
		Tags:            models.StringArray(input.Tags),
	}
	if err := h.Servers.Insert(&server); err != nil {
		log.Printf("Failed to insert server into game_servers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert server"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf("server `%s` added!", server.Name))
}

// UpdateServer godoc
// @Summary      Update a game server
// @Description  Applies a sparse patch to a server: only fields present in the body overwrite the stored row. The region is not re-checked on update.
// @Tags         servers
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Server ID"
// @Param        input body      models.UpdatedGameServer  true  "Sparse patch"
// @Success      200  {string}  string "Update of server was successful"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /server/update/{id} [post]
func (h *Handler) UpdateServer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	server, err := h.Servers.Load(int32(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Server not found"})
			return
		}
		log.Printf("Could not load server %d in UpdateServer: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load server"})
		return
	}

	var patch models.UpdatedGameServer
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	server.Apply(patch)
	if err := h.Servers.Update(server); err != nil {
		log.Printf("Unable to update game_servers in UpdateServer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update server"})
		return
	}

	c.JSON(http.StatusOK, "Update of server was successful")
}

// DeleteServer godoc
// @Summary      Delete a game server
// @Description  Removes a server by id. Deleting an id that does not exist is a client error.
// @Tags         servers
// @Produce      json
// @Param        id path int true "Server ID"
// @Success      200
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /server/delete/{id} [post]
func (h *Handler) DeleteServer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	affected, err := h.Servers.Delete(int32(id))
	if err != nil {
		log.Printf("Encountered an error deleting server id %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete server"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Server not found"})
		return
	}

	c.Data(http.StatusOK, "application/json", nil)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamelist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The catalog is read-only over HTTP: games enter it through list updates and
// are never deleted, these handlers only expose what accumulated.

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// GetGames godoc
// @Summary      Browse the game catalog
// @Description  Retrieves a paginated list of every game known to the catalog.
// @Tags         games
// @Produce      json
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Router       /game [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := Paginate[models.Game](h.db.Order("id ASC"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	views := make([]GameResponse, 0, len(result.Data))
	for i := range result.Data {
		views = append(views, newGameResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(views, result.Meta.TotalItems, page, limit))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game from the catalog.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /game/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var game models.Game
	if err := h.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve the game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(&game))
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gamelist/backend/internal/auth"
	"gamelist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// CreateListInput defines the body for creating a game list.
// IsPrivate is a pointer so an explicit false still satisfies "required".
type CreateListInput struct {
	Name        string `json:"name" binding:"required" example:"Favorites"`
	Description string `json:"description" example:"All-time favorites"`
	IsPrivate   *bool  `json:"is_private" binding:"required"`
}

// UpdateListInput defines the body for updating a game list. Every field is
// optional; a nil pointer means "leave unchanged", so clearing the
// description to "" or flipping is_private to false are both expressible.
type UpdateListInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	IsPrivate   *bool              `json:"is_private"`
	Games       *[]GameUpsertInput `json:"games"`
}

// GameUpsertInput carries one game entry of a list update. The id is the
// upstream catalog identifier; the remaining attributes are only used when
// the id is not in the catalog yet.
type GameUpsertInput struct {
	ID               uint   `json:"id" binding:"required" example:"452"`
	Title            string `json:"title" example:"Call of War"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	GameURL          string `json:"game_url"`
	Genre            string `json:"genre" example:"Strategy"`
	Platform         string `json:"platform" example:"Web Browser"`
	Publisher        string `json:"publisher"`
	Developer        string `json:"developer"`
	ReleaseDate      string `json:"release_date" example:"2015-07-06"`
}

// GameResponse defines the flat representation of a catalog game.
type GameResponse struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	GameURL          string `json:"game_url"`
	Genre            string `json:"genre"`
	Platform         string `json:"platform"`
	Publisher        string `json:"publisher"`
	Developer        string `json:"developer"`
	ReleaseDate      string `json:"release_date"`
}

// ListResponse defines the representation of a game list.
type ListResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	User        string         `json:"user"`
	IsPrivate   bool           `json:"is_private"`
	Games       []GameResponse `json:"games"`
}

// ListCollectionResponse wraps a set of lists in the data envelope.
type ListCollectionResponse struct {
	Data []ListResponse `json:"data"`
}

func newGameResponse(game *models.Game) GameResponse {
	var releaseDate string
	if game.ReleaseDate != nil {
		releaseDate = game.ReleaseDate.Format("2006-01-02")
	}

	return GameResponse{
		ID:               game.ID,
		Title:            game.Title,
		Thumbnail:        game.Thumbnail,
		ShortDescription: game.ShortDescription,
		GameURL:          game.GameURL,
		Genre:            game.Genre,
		Platform:         game.Platform,
		Publisher:        game.Publisher,
		Developer:        game.Developer,
		ReleaseDate:      releaseDate,
	}
}

func newListResponse(list *models.GameList) ListResponse {
	games := make([]GameResponse, 0, len(list.Games))
	for _, game := range list.Games {
		if game != nil {
			games = append(games, newGameResponse(game))
		}
	}

	return ListResponse{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		User:        list.User,
		IsPrivate:   list.IsPrivate,
		Games:       games,
	}
}

func newListCollectionResponse(lists []models.GameList) ListCollectionResponse {
	views := make([]ListResponse, 0, len(lists))
	for i := range lists {
		views = append(views, newListResponse(&lists[i]))
	}
	return ListCollectionResponse{Data: views}
}

// endregion

// orderGamesByID keeps the nested games collection sorted on reads.
func orderGamesByID(db *gorm.DB) *gorm.DB {
	return db.Order("games.id ASC")
}

// region --- Handlers ---

// CreateList godoc
// @Summary      Create a new game list
// @Description  Creates a game list owned by the authenticated user.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateListInput true "List Info"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "A list with this name already exists"
// @Router       /list [post]
func (h *Handler) CreateList(c *gin.Context) {
	user, ok := auth.Username(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return
	}

	var input CreateListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := models.GameList{
		Name:        input.Name,
		Description: input.Description,
		User:        user,
		IsPrivate:   *input.IsPrivate,
	}

	if err := h.db.Create(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A list with this name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save the list"})
		return
	}

	c.JSON(http.StatusOK, newListResponse(&list))
}

// GetPublicLists godoc
// @Summary      Get all public game lists
// @Description  Retrieves every list whose is_private flag is false. No authentication required.
// @Tags         lists
// @Produce      json
// @Success      200  {object}  ListCollectionResponse
// @Router       /list [get]
func (h *Handler) GetPublicLists(c *gin.Context) {
	var lists []models.GameList
	err := h.db.Preload("Games", orderGamesByID).
		Where("is_private = ?", false).
		Find(&lists).Error
	if err != nil {
		// Store-layer failures answer 400, the taxonomy has no 500 class.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	c.JSON(http.StatusOK, newListCollectionResponse(lists))
}

// GetMyLists godoc
// @Summary      Get the caller's game lists
// @Description  Retrieves every list owned by the authenticated user, private ones included.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ListCollectionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /list/me [get]
func (h *Handler) GetMyLists(c *gin.Context) {
	user, ok := auth.Username(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return
	}

	var lists []models.GameList
	err := h.db.Preload("Games", orderGamesByID).
		Where(`"user" = ?`, user).
		Find(&lists).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	c.JSON(http.StatusOK, newListCollectionResponse(lists))
}

// GetList godoc
// @Summary      Get a game list by ID
// @Description  Retrieves a single list if it is public or owned by the caller. A private list owned by someone else is reported as not found.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "List ID"
// @Success      200  {object}  ListResponse
// @Failure      404  {object}  ErrorResponse "List not found"
// @Router       /list/{id} [get]
func (h *Handler) GetList(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	// Anonymous callers get the zero identity, which never matches an owner.
	user, _ := auth.Username(c)

	var list models.GameList
	err = h.db.Preload("Games", orderGamesByID).
		Where(`id = ? AND (is_private = ? OR "user" = ?)`, id, false, user).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve the list"})
		return
	}

	c.JSON(http.StatusOK, newListResponse(&list))
}

// DeleteList godoc
// @Summary      Delete a game list
// @Description  Deletes a list owned by the authenticated user. Ownership is part of the delete statement itself, so there is no window between check and delete.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "List ID"
// @Success      200  {object}  map[string]bool "{"data": true}"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "List not found"
// @Router       /list/{id} [delete]
func (h *Handler) DeleteList(c *gin.Context) {
	user, ok := auth.Username(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := h.db.Where(`id = ? AND "user" = ?`, id, user).Delete(&models.GameList{})
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete the list"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": true})
}

// UpdateList godoc
// @Summary      Update a game list
// @Description  Updates a list owned by the authenticated user. Omitted fields keep their stored value. When games are supplied, the whole collection is replaced; entries with a known id reuse the stored game, unknown ids are added to the catalog.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "List ID"
// @Param        input body      UpdateListInput true  "Fields to change"
// @Success      200   {object}  ListResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "List not found"
// @Failure      409   {object}  ErrorResponse "A list with this name already exists"
// @Router       /list/{id} [put]
func (h *Handler) UpdateList(c *gin.Context) {
	user, ok := auth.Username(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input UpdateListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// One unit of work: the fetch, the field merge, the row update and the
	// games replace commit or roll back together. A failed replace must not
	// leave a committed rename behind.
	var list models.GameList
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Games", orderGamesByID).
			Where(`id = ? AND "user" = ?`, id, user).
			First(&list).Error; err != nil {
			return err
		}

		if input.Name != nil {
			list.Name = *input.Name
		}
		if input.Description != nil {
			list.Description = *input.Description
		}
		if input.IsPrivate != nil {
			list.IsPrivate = *input.IsPrivate
		}

		var games []*models.Game
		if input.Games != nil {
			var err error
			games, err = resolveGames(tx, *input.Games)
			if err != nil {
				return err
			}
		}

		// The row update and the association replace are two explicit steps;
		// Save must not touch the join table on its own.
		if err := tx.Omit(clause.Associations).Save(&list).Error; err != nil {
			return err
		}

		if input.Games != nil {
			if err := tx.Model(&list).Association("Games").Replace(games); err != nil {
				return err
			}
			// Respond with the games in the order the request gave them.
			list.Games = games
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "A list with this name already exists"})
		case errors.Is(err, errInvalidGames):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update the list"})
		}
		return
	}

	c.JSON(http.StatusOK, newListResponse(&list))
}

// endregion

// errInvalidGames marks games entries the request itself got wrong, as
// opposed to storage failures.
var errInvalidGames = errors.New("invalid games")

// resolveGames maps upsert entries to catalog rows: an entry whose id already
// exists reuses the stored row untouched (the supplied attributes are
// discarded), an unknown id is inserted with the supplied attributes. The
// returned slice keeps the input order. Lookups and inserts run on the
// caller's unit of work.
func resolveGames(tx *gorm.DB, inputs []GameUpsertInput) ([]*models.Game, error) {
	games := make([]*models.Game, 0, len(inputs))

	for _, input := range inputs {
		var game models.Game
		err := tx.First(&game, input.ID).Error
		if err == nil {
			games = append(games, &game)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up game %d: %v", input.ID, err)
		}

		if input.Title == "" {
			return nil, fmt.Errorf("%w: game %d is not in the catalog and has no title", errInvalidGames, input.ID)
		}

		releaseDate, err := parseReleaseDate(input.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidGames, err)
		}

		game = models.Game{
			ID:               input.ID,
			Title:            input.Title,
			Thumbnail:        input.Thumbnail,
			ShortDescription: input.ShortDescription,
			GameURL:          input.GameURL,
			Genre:            input.Genre,
			Platform:         input.Platform,
			Publisher:        input.Publisher,
			Developer:        input.Developer,
			ReleaseDate:      releaseDate,
		}
		if err := tx.Create(&game).Error; err != nil {
			return nil, fmt.Errorf("failed to save game %d: %v", input.ID, err)
		}

		games = append(games, &game)
	}

	return games, nil
}

// parseReleaseDate accepts the catalog's plain date format as well as RFC 3339.
func parseReleaseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid release_date %q", value)
}

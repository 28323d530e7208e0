package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/models"
	"gamecollector/backend/internal/service"
	"gamecollector/backend/internal/store"
	"gamecollector/backend/pkg/message"
)

const videoGameController = "VideoGameHandler"

// Messages returned by the video game endpoints.
const (
	MsgVideoGameNotFound = "Videogame not found"
	MsgVideoGameDeleted  = "Videogame deleted successfully"
)

// VideoGameHandler serves the /videogames endpoints.
type VideoGameHandler struct {
	svc *service.VideoGameService
	log logrus.FieldLogger
}

// NewVideoGameHandler constructs a VideoGameHandler.
func NewVideoGameHandler(svc *service.VideoGameService, log logrus.FieldLogger) *VideoGameHandler {
	return &VideoGameHandler{svc: svc, log: logging.Module(log, "videogame-handler")}
}

// region --- Helpers ---

func parseVideoGameQuery(c *gin.Context) (store.VideoGameQuery, error) {
	var q store.VideoGameQuery
	for key, dst := range map[string]**string{
		"name":       &q.Name,
		"developer":  &q.Developer,
		"gamesystem": &q.GameSystem,
		"genre":      &q.Genre,
	} {
		if v, ok := c.GetQuery(key); ok {
			*dst = &v
		}
	}
	if raw, ok := c.GetQuery("year"); ok {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return store.VideoGameQuery{}, fmt.Errorf("invalid year %q: must be an integer", raw)
		}
		q.Year = &year
	}
	q.Sort = c.Query("sort")
	q.Fields = c.Query("fields")
	return q, nil
}

// endregion

// GetVideoGames godoc
// @Summary      List video games
// @Description  Lists video games filtered by exact field values, sorted by any field and optionally reduced to a set of fields.
// @Tags         videogames
// @Produce      json
// @Param        name       query    string false "Exact name"
// @Param        developer  query    string false "Exact developer"
// @Param        gamesystem query    string false "Exact game system name"
// @Param        genre      query    string false "Exact genre"
// @Param        year       query    int    false "Exact year"
// @Param        sort       query    string false "Field to sort by, prefixed with - for descending"
// @Param        fields     query    string false "Comma-separated fields to return"
// @Success      200 {array}  models.VideoGame
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} InternalErrorResponse
// @Router       /videogames [get]
func (h *VideoGameHandler) GetVideoGames(c *gin.Context) {
	q, err := parseVideoGameQuery(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if q.Fields != "" {
		c.JSON(http.StatusOK, h.svc.ListFields(q))
		return
	}
	c.JSON(http.StatusOK, h.svc.List(q))
}

// GetVideoGameByID godoc
// @Summary      Get a video game
// @Description  Retrieves a single video game by its id.
// @Tags         videogames
// @Produce      json
// @Param        id  path      string true "Video game ID"
// @Success      200 {object}  models.VideoGame
// @Failure      404 {object}  MessageResponse "Videogame not found"
// @Failure      500 {object}  InternalErrorResponse
// @Router       /videogames/{id} [get]
func (h *VideoGameHandler) GetVideoGameByID(c *gin.Context) {
	v, ok := h.svc.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, message.Message(MsgVideoGameNotFound))
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateVideoGame godoc
// @Summary      Create a video game
// @Description  Creates a video game for an existing game system, unique by name on that game system.
// @Tags         videogames
// @Accept       json
// @Produce      json
// @Param        input body      models.VideoGameInput true "Video game"
// @Success      201   {object}  models.VideoGame
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  MessageResponse "Game system not found or duplicate video game"
// @Failure      500   {object}  InternalErrorResponse
// @Router       /videogames [post]
func (h *VideoGameHandler) CreateVideoGame(c *gin.Context) {
	var input models.VideoGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	v, err := h.svc.Create(input)
	if err != nil {
		respondRuleError(c, h.log, http.StatusNotFound, videoGameController, "CreateVideoGame", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateVideoGame godoc
// @Summary      Update a video game
// @Description  Overwrites every field of a video game but its id.
// @Tags         videogames
// @Accept       json
// @Produce      json
// @Param        id    path      string                true "Video game ID"
// @Param        input body      models.VideoGameInput true "New video game data"
// @Success      200   {object}  models.VideoGame
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  MessageResponse "Videogame not found"
// @Failure      500   {object}  InternalErrorResponse
// @Router       /videogames/{id} [put]
func (h *VideoGameHandler) UpdateVideoGame(c *gin.Context) {
	var input models.VideoGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	v, err := h.svc.Update(models.VideoGame{
		ID:         c.Param("id"),
		Name:       input.Name,
		Developer:  input.Developer,
		GameSystem: input.GameSystem,
		Genre:      input.Genre,
		Year:       input.Year,
		Image:      input.Image,
	})
	if err != nil {
		respondRuleError(c, h.log, http.StatusNotFound, videoGameController, "UpdateVideoGame", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVideoGame godoc
// @Summary      Delete a video game
// @Description  Deletes a video game.
// @Tags         videogames
// @Produce      json
// @Param        id  path      string true "Video game ID"
// @Success      200 {object}  MessageResponse "Videogame deleted successfully"
// @Failure      404 {object}  MessageResponse "Videogame not found"
// @Failure      500 {object}  InternalErrorResponse
// @Router       /videogames/{id} [delete]
func (h *VideoGameHandler) DeleteVideoGame(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondRuleError(c, h.log, http.StatusNotFound, videoGameController, "DeleteVideoGame", err)
		return
	}
	c.JSON(http.StatusOK, message.Message(MsgVideoGameDeleted))
}

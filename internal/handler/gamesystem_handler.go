package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/models"
	"gamecollector/backend/internal/service"
	"gamecollector/backend/internal/store"
	"gamecollector/backend/pkg/message"
)

const gameSystemController = "GameSystemHandler"

// Messages returned by the game system endpoints.
const (
	MsgGameSystemNotFound = "Gamesystem not found"
	MsgGameSystemDeleted  = "Gamesystem deleted successfully"
)

// GameSystemHandler serves the /gamesystems endpoints.
type GameSystemHandler struct {
	svc *service.GameSystemService
	log logrus.FieldLogger
}

// NewGameSystemHandler constructs a GameSystemHandler.
func NewGameSystemHandler(svc *service.GameSystemService, log logrus.FieldLogger) *GameSystemHandler {
	return &GameSystemHandler{svc: svc, log: logging.Module(log, "gamesystem-handler")}
}

// GetGameSystems godoc
// @Summary      List game systems
// @Description  Lists game systems, optionally filtered by exact name and sorted by name.
// @Tags         gamesystems
// @Produce      json
// @Param        name query     string false "Exact game system name"
// @Param        sort query     string false "Sort order" Enums(name, -name)
// @Success      200  {array}   models.GameSystem
// @Failure      500  {object}  InternalErrorResponse
// @Router       /gamesystems [get]
func (h *GameSystemHandler) GetGameSystems(c *gin.Context) {
	var q store.GameSystemQuery
	if name, ok := c.GetQuery("name"); ok {
		q.Name = &name
	}
	q.Sort = c.Query("sort")

	c.JSON(http.StatusOK, h.svc.List(q))
}

// GetGameSystemByID godoc
// @Summary      Get a game system
// @Description  Retrieves a single game system by its id.
// @Tags         gamesystems
// @Produce      json
// @Param        id  path      string true "Game system ID"
// @Success      200 {object}  models.GameSystem
// @Failure      404 {object}  MessageResponse "Gamesystem not found"
// @Failure      500 {object}  InternalErrorResponse
// @Router       /gamesystems/{id} [get]
func (h *GameSystemHandler) GetGameSystemByID(c *gin.Context) {
	gs, ok := h.svc.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, message.Message(MsgGameSystemNotFound))
		return
	}
	c.JSON(http.StatusOK, gs)
}

// CreateGameSystem godoc
// @Summary      Create a game system
// @Description  Creates a game system. Names are unique.
// @Tags         gamesystems
// @Accept       json
// @Produce      json
// @Param        input body      models.GameSystemInput true "Game system"
// @Success      201   {object}  models.GameSystem
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  MessageResponse "Name already taken"
// @Failure      500   {object}  InternalErrorResponse
// @Router       /gamesystems [post]
func (h *GameSystemHandler) CreateGameSystem(c *gin.Context) {
	var input models.GameSystemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	gs, err := h.svc.Create(input)
	if err != nil {
		respondRuleError(c, h.log, http.StatusConflict, gameSystemController, "CreateGameSystem", err)
		return
	}
	c.JSON(http.StatusCreated, gs)
}

// UpdateGameSystem godoc
// @Summary      Update a game system
// @Description  Overwrites name, description and image of a game system.
// @Tags         gamesystems
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true "Game system ID"
// @Param        input body      models.GameSystemInput true "New game system data"
// @Success      200   {object}  models.GameSystem
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  MessageResponse "Unknown id or name already taken"
// @Failure      500   {object}  InternalErrorResponse
// @Router       /gamesystems/{id} [put]
func (h *GameSystemHandler) UpdateGameSystem(c *gin.Context) {
	var input models.GameSystemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	gs, err := h.svc.Update(models.GameSystem{
		ID:          c.Param("id"),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	})
	if err != nil {
		respondRuleError(c, h.log, http.StatusConflict, gameSystemController, "UpdateGameSystem", err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

// DeleteGameSystem godoc
// @Summary      Delete a game system
// @Description  Deletes a game system that no video game references.
// @Tags         gamesystems
// @Produce      json
// @Param        id  path      string true "Game system ID"
// @Success      200 {object}  MessageResponse "Gamesystem deleted successfully"
// @Failure      404 {object}  MessageResponse "Unknown id or video games associated"
// @Failure      500 {object}  InternalErrorResponse
// @Router       /gamesystems/{id} [delete]
func (h *GameSystemHandler) DeleteGameSystem(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondRuleError(c, h.log, http.StatusNotFound, gameSystemController, "DeleteGameSystem", err)
		return
	}
	c.JSON(http.StatusOK, message.Message(MsgGameSystemDeleted))
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/service"
	"gamecollector/backend/pkg/message"
)

// region --- DTOs ---

// ErrorResponse represents a malformed request response.
type ErrorResponse struct {
	Error string `json:"error" example:"Key: 'GameSystemInput.Name' Error:Field validation for 'Name' failed on the 'required' tag"`
}

// MessageResponse represents an informational or business-rule response.
type MessageResponse struct {
	Message string `json:"message" example:"Gamesystem not found"`
}

// InternalError describes an unexpected failure without exposing its cause.
type InternalError struct {
	Code        int    `json:"code" example:"500"`
	Message     string `json:"message" example:"Internal Server Error"`
	Description string `json:"description" example:"Internal Application Error in GameSystemHandler:GetGameSystems"`
}

// InternalErrorResponse is the body of every 500 response.
type InternalErrorResponse struct {
	Error InternalError `json:"error"`
}

// endregion

func buildErrorResponse(controller, method string) InternalErrorResponse {
	return InternalErrorResponse{Error: InternalError{
		Code:        http.StatusInternalServerError,
		Message:     "Internal Server Error",
		Description: "Internal Application Error in " + controller + ":" + method,
	}}
}

// handleErrorResponse logs an unexpected error and answers with a generic 500.
func handleErrorResponse(c *gin.Context, log logrus.FieldLogger, controller, method string, err error) {
	logging.OrDiscard(log).WithError(err).
		WithField(logging.FieldHandler, controller+":"+method).
		Error("unexpected error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, buildErrorResponse(controller, method))
}

// respondRuleError answers a business-rule rejection with status and its
// message. Any other error is treated as unexpected.
func respondRuleError(c *gin.Context, log logrus.FieldLogger, status int, controller, method string, err error) {
	var rerr *service.RuleError
	if errors.As(err, &rerr) {
		c.JSON(status, message.Message(rerr.Message))
		return
	}
	handleErrorResponse(c, log, controller, method, err)
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, message.Error(err.Error()))
}

// handlerLabel splits a gin handler name such as
// "gamecollector/backend/internal/handler.(*GameSystemHandler).CreateGameSystem-fm"
// into its receiver and method.
func handlerLabel(name string) (controller, method string) {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return name, ""
	}
	return strings.Trim(parts[len(parts)-2], "(*)"), parts[len(parts)-1]
}

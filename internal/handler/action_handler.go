package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yrwanda/practicelog/internal/dto"
	"github.com/yrwanda/practicelog/internal/service"
	"github.com/yrwanda/practicelog/pkg/apperror"
	"github.com/yrwanda/practicelog/pkg/response"
	"github.com/yrwanda/practicelog/pkg/validator"
)

type ActionHandler struct {
	actionService service.ActionService
}

func NewActionHandler(actionService service.ActionService) *ActionHandler {
	return &ActionHandler{actionService: actionService}
}

func (h *ActionHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	action, err := h.actionService.Create(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) List(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	actions, err := h.actionService.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, actions)
}

func (h *ActionHandler) Get(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	actionID, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	action, err := h.actionService.Get(c.Request.Context(), userID, actionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Absent or foreign action serializes as a JSON null body.
	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) Records(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	actionID, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.actionService.Records(c.Request.Context(), userID, actionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *ActionHandler) Finish(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	actionID, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Body is optional; an empty request finishes with an empty note.
	var input dto.FinishInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	record, err := h.actionService.Finish(c.Request.Context(), userID, actionID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.ErrBadRequest
	}
	return id, nil
}

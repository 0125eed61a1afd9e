package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateTaskRequest has no completeStatus field: an update
// always completes the task.
type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgMissingToken))
		return
	}

	tasks, err := h.tasks.GetTasks(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, mapServiceError(err))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	respond(c, http.StatusOK, response, "Tasks retrieved successfully")
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgMissingToken))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, mapServiceError(err))
		return
	}

	respond(c, http.StatusCreated, newTaskResponse(task), "Task created successfully")
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgMissingToken))
		return
	}

	// An empty body is a plain "mark as completed".
	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), services.UpdateTaskParams{
		ID:          c.Param("id"),
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task")
		abort(c, mapServiceError(err))
		return
	}

	respond(c, http.StatusOK, newTaskResponse(task), "Task marked as completed")
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgMissingToken))
		return
	}

	err := h.tasks.DeleteTask(c.Request.Context(), services.DeleteTaskParams{
		ID:      c.Param("id"),
		OwnerID: userID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		abort(c, mapServiceError(err))
		return
	}

	respond(c, http.StatusOK, nil, "Task deleted successfully")
}

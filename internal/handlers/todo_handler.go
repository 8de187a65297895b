package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/services"
)

// TodoHandler handles todo requests.
type TodoHandler struct {
	todoService  services.TodoServicer
	auditService services.AuditServicer
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService services.TodoServicer, auditService services.AuditServicer) *TodoHandler {
	return &TodoHandler{todoService: todoService, auditService: auditService}
}

// CreateTodoRequest represents the request payload for creating a todo.
// DueDate accepts YYYY-MM-DD (stored as midnight UTC) or RFC 3339.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority" binding:"max=20"`
	DueDate     string `json:"dueDate" binding:"omitempty,iso_date"`
}

// UpdateTodoRequest represents the request payload for patching a todo. An
// empty dueDate clears it.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" binding:"omitempty,max=20"`
	DueDate     *string `json:"dueDate" binding:"omitempty,iso_date|len=0"`
}

// ListTodosQuery holds the todo listing filters.
type ListTodosQuery struct {
	Completed *bool `form:"completed"`
}

// ListTodos returns todos by due date
// @Summary     List todos
// @Tags        todos
// @Produce     json
// @Security    BearerAuth
// @Param       completed query bool false "Filter by completion"
// @Param       page      query int  false "Page number"
// @Param       pageSize  query int  false "Page size"
// @Success     200 {array}  models.Todo
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var query ListTodosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), services.TodoFilter{Completed: query.Completed}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithList(c, todos)
}

// GetTodo returns one todo
// @Summary     Get a todo
// @Tags        todos
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Todo ID"
// @Success     200 {object} models.Todo
// @Failure     404 {object} ErrorResponse "Todo not found"
// @Router      /todos/{id} [get]
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a todo
// @Summary     Create a todo
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTodoRequest true "Todo details"
// @Success     200 {object} models.Todo
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), services.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodo patches a todo
// @Summary     Update a todo
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Todo ID"
// @Param       request body UpdateTodoRequest true "Fields to change"
// @Success     200 {object} models.Todo
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Todo not found"
// @Router      /todos/{id} [patch]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTodoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, services.TodoUpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a todo
// @Summary     Delete a todo
// @Tags        todos
// @Security    BearerAuth
// @Param       id path string true "Todo ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Todo not found"
// @Router      /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	deleteRecord(c, h.auditService, "todo", h.todoService.DeleteTodo)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/services"
)

// PlanHandler handles calendar plan requests.
type PlanHandler struct {
	planService  services.PlanServicer
	auditService services.AuditServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer, auditService services.AuditServicer) *PlanHandler {
	return &PlanHandler{planService: planService, auditService: auditService}
}

// CreatePlanRequest represents the request payload for creating a plan
type CreatePlanRequest struct {
	Date      string `json:"date" binding:"required,plan_date"`
	StartTime string `json:"startTime" binding:"required,clock_time"`
	EndTime   string `json:"endTime" binding:"omitempty,clock_time"`
	Title     string `json:"title" binding:"required,max=200"`
	Type      string `json:"type" binding:"max=50"`
	Notes     string `json:"notes" binding:"max=2000"`
}

// UpdatePlanRequest represents the request payload for updating a plan.
// Clients may send the whole stored object; unknown fields such as id are ignored.
type UpdatePlanRequest struct {
	Date      *string `json:"date" binding:"omitempty,plan_date"`
	StartTime *string `json:"startTime" binding:"omitempty,clock_time"`
	EndTime   *string `json:"endTime" binding:"omitempty,clock_time|len=0"`
	Title     *string `json:"title" binding:"omitempty,min=1,max=200"`
	Type      *string `json:"type" binding:"omitempty,max=50"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

// ListPlansQuery holds the plan listing filters. Date is mandatory.
type ListPlansQuery struct {
	Date string `form:"date"`
}

// ListPlans returns the plans of a day ordered by start time
// @Summary     List plans for a day
// @Tags        plans
// @Produce     json
// @Security    BearerAuth
// @Param       date     query string true  "Day (YYYY-MM-DD)"
// @Param       page     query int    false "Page number"
// @Param       pageSize query int    false "Page size"
// @Success     200 {array}  models.Plan
// @Failure     400 {object} ErrorResponse "Date is required"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var query ListPlansQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), query.Date, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithList(c, plans)
}

// GetPlan returns one plan
// @Summary     Get a plan
// @Tags        plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} models.Plan
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan creates a plan
// @Summary     Create a plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlanRequest true "Plan details"
// @Success     200 {object} models.Plan
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), services.PlanInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan updates a plan
// @Summary     Update a plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Plan ID"
// @Param       request body UpdatePlanRequest true "Fields to change"
// @Success     200 {object} models.Plan
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), id, services.PlanUpdateFields{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a plan
// @Summary     Delete a plan
// @Tags        plans
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	deleteRecord(c, h.auditService, "plan", h.planService.DeletePlan)
}

package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a property after a completed stay; one review per guest and property
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found")
		case errors.Is(err, commands.ErrNoCompletedStay):
			httperr.AbortWithError(c, http.StatusForbidden, err, "No completed stay on this property")
		case errors.Is(err, commands.ErrReviewAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create review failed")
		}
		return
	}

	h.respondWithReview(c, http.StatusCreated, id)
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review id")
		return
	}

	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary List reviews for a property
// @Description List reviews of a property, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Property ID"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/reviews [get]
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	var req reqdto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if req.After != "" {
		cursor = &queries.Cursor{After: req.After}
	}

	items, next, err := h.q.ListByProperty(c.Request.Context(), propertyID, cursor, req.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	page, err := resdto.FromReviewList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Check review eligibility
// @Description Report whether the authenticated guest may review the property
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/reviews/eligibility [get]
func (h *ReviewHandler) Eligibility(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	eligibility, err := h.q.CheckEligibility(c.Request.Context(), propertyID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromEligibility(eligibility))
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review id")
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(), userID); err != nil {
		h.abortWithCommandError(c, err, "Update review failed")
		return
	}

	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Delete own review by ID (authors and admins)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review id")
		return
	}

	if err := h.cmds.DeleteReview(c.Request.Context(), id, userID, role); err != nil {
		h.abortWithCommandError(c, err, "Delete review failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondWithReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review")
		return
	}
	resp, err := resdto.FromReviewView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(status, resp)
}

func (h *ReviewHandler) abortWithCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
	case errors.Is(err, commands.ErrNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed")
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg)
	}
}

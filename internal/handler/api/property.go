package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	cmds commands.PropertyCommands
	q    queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q}
}

// @Summary Create property
// @Description Create a new property listing (hosts only)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Create property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.cmds.CreateProperty(c.Request.Context(), req.ToCommand(), userID, role)
	if err != nil {
		h.abortWithCommandError(c, err, "Create property failed")
		return
	}

	h.respondWithProperty(c, http.StatusCreated, id)
}

// @Summary Get property
// @Description Get a property with its rating and booked date ranges
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromPropertyView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List properties
// @Description List properties with optional location, capacity, and price filters
// @Tags properties
// @Produce json
// @Param location query string false "Location substring filter"
// @Param min_guests query int false "Minimum guest capacity"
// @Param max_price_cents query int false "Maximum nightly price in cents"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PropertyPageResponse
// @Failure 400 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var req reqdto.ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if req.After != "" {
		cursor = &queries.Cursor{After: req.After}
	}

	items, next, err := h.q.List(c.Request.Context(), req.Filters(), cursor, req.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	page, err := resdto.FromPropertyList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary List own properties
// @Description List properties owned by the authenticated host
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PropertyPageResponse
// @Failure 401 {object} map[string]string
// @Router /properties/mine [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.q.ListByHost(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	page, err := resdto.FromPropertyList(items, nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Update property
// @Description Update a property listing (owner only)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Update property request"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateProperty(c.Request.Context(), id, req.ToCommand(), userID, role); err != nil {
		h.abortWithCommandError(c, err, "Update property failed")
		return
	}

	h.respondWithProperty(c, http.StatusOK, id)
}

// @Summary Delete property
// @Description Delete a property listing (owner or admin)
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	if err := h.cmds.DeleteProperty(c.Request.Context(), id, userID, role); err != nil {
		h.abortWithCommandError(c, err, "Delete property failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) respondWithProperty(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load property")
		return
	}
	resp, err := resdto.FromPropertyView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(status, resp)
}

func (h *PropertyHandler) abortWithCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found")
	case errors.Is(err, commands.ErrHostRoleRequired), errors.Is(err, commands.ErrNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed")
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg)
	}
}

// principal pulls the authenticated user out of the context set by
// RequireAuth.
func principal(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		c.Abort()
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		c.Abort()
		return uuid.Nil, "", false
	}
	return userID, role, true
}

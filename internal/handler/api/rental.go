package api

import (
	"context"
	"errors"
	"net/http"

	"fleetrent/internal/domain/rental"
	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/middleware"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	commands commands.RentalCommands
	queries  queries.RentalQueries
}

func NewRentalHandler(cmd commands.RentalCommands, qry queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create rental
// @Description Create a rental or reservation for a vehicle
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List rentals
// @Description List all rentals of the current tenant
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalListResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RentalListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRentalListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get rental
// @Description Get rental by ID with extension history
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Extend rental
// @Description Prolong an active rental to a later end time
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.ExtendRentalRequest true "Extension request"
// @Success 200 {object} resdto.ExtendedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/extend [post]
func (h *RentalHandler) ExtendRental(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req reqdto.ExtendRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	added, err := h.commands.Extend(c.Request.Context(), ownerID, id, req.NewEndAt, rental.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ExtendedResponse{ID: id, AddedAmount: added})
}

// @Summary Complete rental
// @Description Mark an active rental as completed
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/complete [post]
func (h *RentalHandler) CompleteRental(c *gin.Context) {
	h.simpleCommand(c, h.commands.Complete)
}

// @Summary Issue reserved vehicle
// @Description Hand a reserved vehicle over to the client
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/issue [post]
func (h *RentalHandler) IssueRental(c *gin.Context) {
	h.simpleCommand(c, h.commands.Issue)
}

// @Summary Settle rental debt
// @Description Clear an outstanding debt and record the income
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/settle-debt [post]
func (h *RentalHandler) SettleDebt(c *gin.Context) {
	h.simpleCommand(c, h.commands.SettleDebt)
}

// @Summary Delete rental
// @Description Delete a rental and release its schedule slot
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [delete]
func (h *RentalHandler) DeleteRental(c *gin.Context) {
	h.simpleCommand(c, h.commands.Delete)
}

func (h *RentalHandler) simpleCommand(c *gin.Context, fn func(ctx context.Context, ownerID, id uuid.UUID) error) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := fn(c.Request.Context(), ownerID, id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
	case errors.Is(err, commands.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rental not found",
		})
	case errors.Is(err, commands.ErrVehicleUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle is not available for the requested period",
		})
	case errors.Is(err, commands.ErrVehicleInMaintenance):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle is under maintenance",
		})
	case errors.Is(err, commands.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental period",
		})
	case errors.Is(err, commands.ErrRentalNotActive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Rental is not active",
		})
	case errors.Is(err, commands.ErrNotReservation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Rental is not an open reservation",
		})
	case errors.Is(err, commands.ErrNotInDebt):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Rental has no outstanding debt",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, err
	}
	return id, nil
}

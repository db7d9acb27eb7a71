package api

import (
	"errors"
	"net/http"

	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/middleware"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingRequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewBookingRequestHandler(cmd commands.RequestCommands, qry queries.RequestQueries) *BookingRequestHandler {
	return &BookingRequestHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Submit booking request
// @Description Public endpoint for clients and guests to request a rental
// @Tags booking-requests
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /public/booking-requests [post]
func (h *BookingRequestHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Submit(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List booking requests
// @Description List booking requests of the current tenant
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingRequestResponse
// @Failure 401 {object} map[string]string
// @Router /booking-requests [get]
func (h *BookingRequestHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingRequestResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRequestView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking request
// @Description Get booking request by ID
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking-requests/{id} [get]
func (h *BookingRequestHandler) Get(c *gin.Context) {
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
		case errors.Is(err, queries.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Approve booking request
// @Description Convert a pending request into a rental
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ApproveBookingRequest false "Approval options"
// @Success 201 {object} resdto.ApprovedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking-requests/{id}/approve [post]
func (h *BookingRequestHandler) Approve(c *gin.Context) {
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

	var req reqdto.ApproveBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	rentalID, err := h.commands.Approve(c.Request.Context(), ownerID, id, req.ClientID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ApprovedResponse{RentalID: rentalID})
}

// @Summary Reject booking request
// @Description Mark a pending request as rejected
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking-requests/{id}/reject [post]
func (h *BookingRequestHandler) Reject(c *gin.Context) {
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

	if err := h.commands.Reject(c.Request.Context(), ownerID, id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking request
// @Description Remove a booking request
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking-requests/{id} [delete]
func (h *BookingRequestHandler) Delete(c *gin.Context) {
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

	if err := h.commands.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingRequestHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking request not found",
		})
	case errors.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
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
	case errors.Is(err, commands.ErrMissingContact):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Guest requests require a contact name and phone",
		})
	case errors.Is(err, commands.ErrRequestNotPending):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking request is not pending",
		})
	case errors.Is(err, commands.ErrGuestRequiresClient):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Approving a guest request requires a client",
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

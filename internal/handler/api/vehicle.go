package api

import (
	"errors"
	"net/http"

	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/middleware"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes the schedule and status endpoints of vehicles. The
// vehicle CRUD itself lives in the surrounding application.
type VehicleHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewVehicleHandler(cmd commands.RentalCommands, qry queries.RentalQueries) *VehicleHandler {
	return &VehicleHandler{
		rentalCommands: cmd,
		rentalQueries:  qry,
	}
}

// @Summary Vehicle schedule
// @Description Calendar view of a vehicle's rentals with timeframe classification
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {array} resdto.ScheduleItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/schedule [get]
func (h *VehicleHandler) GetSchedule(c *gin.Context) {
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

	items, err := h.rentalQueries.VehicleSchedule(c.Request.Context(), ownerID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.ScheduleItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromScheduleItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Reconcile vehicle status
// @Description Recompute the derived vehicle status from its active rentals
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/reconcile [post]
func (h *VehicleHandler) Reconcile(c *gin.Context) {
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

	status, err := h.rentalCommands.ReconcileVehicle(c.Request.Context(), ownerID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReconcileResponse{VehicleID: id, Status: status.String()})
}

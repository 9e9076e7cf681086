package http

import (
	"net/http"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService ports.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

// VehicleRequest keeps year and mileage as strings; the frontend submits
// free-form text and the sanitization layer owns the coercion.
type VehicleRequest struct {
	UserID         string `json:"user_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Make           string `json:"make" binding:"required" example:"Toyota"`
	Model          string `json:"model" binding:"required" example:"Corolla"`
	Year           string `json:"year" example:"2019"`
	LicensePlate   string `json:"license_plate,omitempty" example:"AB-123-CD"`
	CurrentMileage string `json:"current_mileage" example:"42,000"`
}

type DeleteVehicleResponse struct {
	Message string `json:"message"`
}

func NewVehicleHandler(
	vehicleService ports.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Register a vehicle
// @Description Creates a vehicle owned by the given user
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 201 {object} domain.Vehicle "Vehicle created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "User not found"
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	input := &domain.VehicleInput{
		UserID:         req.UserID,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		LicensePlate:   req.LicensePlate,
		CurrentMileage: req.CurrentMileage,
	}

	createdVehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error":   err.Error(),
			"user_id": req.UserID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdVehicle)
}

// @Summary List vehicles
// @Description Lists all vehicles owned by a user
// @Tags vehicles
// @Accept json
// @Produce json
// @Param user_id query string true "Owner ID" example:"123e4567-e89b-12d3-a456-426614174000"
// @Success 200 {array} domain.Vehicle "Vehicles"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /vehicles [get]
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID := c.Query("user_id")
	if userID == "" {
		newErrorResponse(c, http.StatusBadRequest, "user_id is required")
		return
	}

	vehicles, err := h.vehicleService.GetVehiclesByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get vehicles", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	if vehicles == nil {
		vehicles = []*domain.Vehicle{}
	}
	c.JSON(http.StatusOK, vehicles)
}

// @Summary Delete a vehicle
// @Description Deletes a vehicle and cascades to its maintenance records
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID" example:"123e4567-e89b-12d3-a456-426614174000"
// @Success 200 {object} DeleteVehicleResponse "Vehicle deleted"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("id")

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		h.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteVehicleResponse{
		Message: "Vehicle deleted successfully",
	})
}

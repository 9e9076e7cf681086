package http

import (
	"net/http"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordService ports.RecordService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

// RecordRequest keeps cost and mileage as strings: receipt OCR and manual
// entry both produce values like "$45.99" or "12,000".
type RecordRequest struct {
	VehicleID        string `json:"vehicle_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Date             string `json:"date" example:"2024-03-01"`
	Task             string `json:"task" binding:"required" example:"Oil change"`
	Cost             string `json:"cost" example:"$45.99"`
	Mileage          string `json:"mileage" example:"42,500"`
	Category         string `json:"category,omitempty" example:"engine"`
	VerificationHash string `json:"verification_hash,omitempty"`
}

type DeleteRecordResponse struct {
	Message string `json:"message"`
}

func NewRecordHandler(
	recordService ports.RecordService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Log a maintenance record
// @Description Creates a record for a vehicle and bumps its mileage to the running maximum
// @Tags records
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Record data"
// @Success 201 {object} domain.MaintenanceRecord "Record created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create record", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	input := &domain.RecordInput{
		VehicleID:        req.VehicleID,
		Date:             req.Date,
		Task:             req.Task,
		Cost:             req.Cost,
		Mileage:          req.Mileage,
		Category:         req.Category,
		VerificationHash: req.VerificationHash,
	}

	createdRecord, err := h.recordService.CreateRecord(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create record", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": req.VehicleID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdRecord)
}

// @Summary List maintenance records
// @Description Lists a vehicle's records, most recent service date first
// @Tags records
// @Accept json
// @Produce json
// @Param vehicle_id query string true "Vehicle ID" example:"123e4567-e89b-12d3-a456-426614174000"
// @Success 200 {array} domain.MaintenanceRecord "Records"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /records [get]
func (h *RecordHandler) GetRecords(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Query("vehicle_id")
	if vehicleID == "" {
		newErrorResponse(c, http.StatusBadRequest, "vehicle_id is required")
		return
	}

	records, err := h.recordService.GetRecordsByVehicleID(c.Request.Context(), vehicleID)
	if err != nil {
		h.logger.Error("Failed to get records", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	if records == nil {
		records = []*domain.MaintenanceRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// @Summary Delete a record
// @Description Removes a single maintenance record
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID" example:"123e4567-e89b-12d3-a456-426614174000"
// @Success 200 {object} DeleteRecordResponse "Record deleted"
// @Failure 404 {object} errorResponse "Record not found"
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	recordID := c.Param("id")

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID); err != nil {
		h.logger.Error("Failed to delete record", map[string]interface{}{
			"error":     err.Error(),
			"record_id": recordID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteRecordResponse{
		Message: "Record deleted successfully",
	})
}

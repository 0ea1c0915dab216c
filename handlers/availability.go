// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes slot CRUD and batch endpoints.
type AvailabilityHandler struct {
	Slots availability.SlotService
}

func NewAvailabilityHandler(svc availability.SlotService) *AvailabilityHandler {
	return &AvailabilityHandler{Slots: svc}
}

// CreateSlotHandler handles POST /api/availability/slots.
func (h *AvailabilityHandler) CreateSlotHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slots, err := h.Slots.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slots": models.SlotDTOs(slots)})
}

// ListSlotsHandler handles GET /api/availability/slots. The optional
// "date" query narrows the listing to one day.
func (h *AvailabilityHandler) ListSlotsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	slots, err := h.Slots.List(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": models.SlotDTOs(slots)})
}

// UpdateSlotHandler handles PUT /api/availability/slots/:slotID.
func (h *AvailabilityHandler) UpdateSlotHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slots, err := h.Slots.Update(c.Request.Context(), userID, c.Param("slotID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": models.SlotDTOs(slots)})
}

// DeleteSlotHandler handles DELETE /api/availability/slots/:slotID.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Slots.Delete(c.Request.Context(), userID, c.Param("slotID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

// BatchCreateSlotsHandler handles POST /api/availability/slots/batch.
// Items fail independently; the response reports each outcome.
func (h *AvailabilityHandler) BatchCreateSlotsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := h.Slots.BatchCreate(c.Request.Context(), userID, req.Slots)
	c.JSON(http.StatusOK, resp)
}

// BatchDeleteSlotsHandler handles DELETE /api/availability/slots/batch.
func (h *AvailabilityHandler) BatchDeleteSlotsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Slots.BatchDelete(c.Request.Context(), userID, req.Slots)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

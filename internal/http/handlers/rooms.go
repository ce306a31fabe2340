package handlers

import (
	"net/http"
	"strconv"

	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/inventory"

	"github.com/gin-gonic/gin"
)

// GET /api/rooms
func GetRoomCategories(c *gin.Context) {
	out := make([]gin.H, 0, 3)
	for _, cat := range inventory.Categories() {
		out = append(out, gin.H{
			"category":    cat,
			"rooms":       inventory.RoomsInCategory(cat),
			"defaultRent": inventory.DefaultRent(cat),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": out,
		"totalRooms": inventory.TotalRooms(),
	})
}

// GET /api/rooms/available?category=DR&exclude=12
func GetAvailableRooms(c *gin.Context) {
	cat := models.RoomCategory(c.Query("category"))

	var excludeID int64
	if raw := c.Query("exclude"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_exclude", "exclude must be a registration number", err)
			return
		}
		excludeID = id
	}

	rooms, err := bookingService(c).AvailableRooms(cat, excludeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":    cat,
		"rooms":       rooms,
		"defaultRent": inventory.DefaultRent(cat),
	})
}

// GET /api/meta/ota
func GetOTAOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"otaOptions": inventory.OTAOptions})
}

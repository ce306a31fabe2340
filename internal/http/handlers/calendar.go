package handlers

import (
	"net/http"
	"time"

	"hoteldesk/internal/http/middleware"
	"hoteldesk/internal/services"
	"hoteldesk/internal/utils"

	"github.com/gin-gonic/gin"
)

func calendarService(c *gin.Context) services.CalendarService {
	return services.CalendarService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/calendar?month=2024-03
func GetCalendarMonth(c *gin.Context) {
	anchor, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_month", "month must be yyyy-mm", err)
		return
	}

	cells, err := calendarService(c).Month(anchor.Year(), anchor.Month())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month": anchor.Format("2006-01"),
		"cells": cells,
	})
}

// GET /api/calendar/day?date=2024-03-11
func GetCalendarDay(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_date", "date must be yyyy-mm-dd", err)
		return
	}

	detail, err := calendarService(c).Day(date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

package handlers

import (
	"net/http"

	"hoteldesk/internal/http/middleware"
	"hoteldesk/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/summary?period=month&startDate=&endDate=
func GetReportsSummary(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}

	summary, err := svc.Summary(services.SummaryFilter{
		Period:    c.Query("period"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

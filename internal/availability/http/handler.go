package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service       *availability.Service
	vendorService vendors.Service
}

func NewHandler(service *availability.Service, vendorService vendors.Service) *Handler {
	return &Handler{
		service:       service,
		vendorService: vendorService,
	}
}

// Month returns the full 42-cell calendar for one vendor-month: per-date
// availability plus the render decision a booking UI needs. A degraded
// result (backing store briefly unreachable) still returns 200 with every
// date available and an X-Degraded header set.
func (h *Handler) Month(c *gin.Context) {
	vendorID := c.Param("id")
	if _, err := uuid.Parse(vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	info, err := h.vendorService.CalendarInfo(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	today := availability.Today(info.Location)
	year, month, err := resolveMonth(q.Month, today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
		return
	}

	view, err := h.service.Month(c.Request.Context(), availability.MonthRequest{
		VendorID:  vendorID,
		ServiceID: q.ServiceID,
		Year:      year,
		Month:     month,
		Capacity:  info.Capacity,
		Occupying: availability.DefaultOccupying(),
		Location:  info.Location,
		Today:     today,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	selected := availability.DateKey(q.Selected)

	resp := MonthResponse{
		VendorID: vendorID,
		Year:     view.Year,
		Month:    int(view.Month),
		Degraded: view.Degraded,
		Days:     make([]CellResponse, 0, len(view.Grid)),
	}
	for _, cell := range view.Grid {
		var day *availability.DayAvailability
		if d, ok := view.Days[cell.Date]; ok {
			day = &d
		}
		decision := availability.Decide(day, cell.Date.Before(today), cell.Date == selected)
		resp.Days = append(resp.Days, newCellResponse(cell, day, decision))
	}

	if view.Degraded {
		response.Warning(c, "availability data is temporarily incomplete")
	}
	c.JSON(http.StatusOK, resp)
}

// CalendarFeed exports the vendor's blocked days of the next 12 months as
// an iCalendar file.
func (h *Handler) CalendarFeed(c *gin.Context) {
	vendorID := c.Param("id")
	if _, err := uuid.Parse(vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	info, err := h.vendorService.CalendarInfo(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	start := availability.Today(info.Location)
	result, err := h.service.Range(c.Request.Context(), availability.RangeRequest{
		VendorID:  vendorID,
		Start:     start,
		End:       availability.MakeDateKey(start.Time(info.Location).AddDate(1, 0, 0), info.Location),
		Capacity:  info.Capacity,
		Occupying: availability.DefaultOccupying(),
		Location:  info.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Degraded {
		response.Warning(c, "availability data is temporarily incomplete")
	}
	feed := availability.BuildCalendarFeed(vendorID, info.Name, result.Days)
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func resolveMonth(raw string, today availability.DateKey) (int, time.Month, error) {
	if raw == "" {
		t := today.Time(time.UTC)
		return t.Year(), t.Month(), nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

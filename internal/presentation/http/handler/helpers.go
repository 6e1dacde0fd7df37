package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
)

const dateLayout = "2006-01-02"

// uuidParam parses the named path parameter
func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// tenantLocation is the time zone of the salon set by TenantMiddleware, or fallback
func tenantLocation(c *gin.Context, fallback *time.Location) *time.Location {
	if v, ok := c.Get("tenant"); ok {
		if t, ok := v.(*entity.Tenant); ok {
			return t.Location(fallback)
		}
	}
	return fallback
}

// dateRange reads the start and end query parameters. Dates without a time
// cover the whole day in loc. Missing values default to the current month so far.
func dateRange(c *gin.Context, loc *time.Location, now time.Time) (time.Time, time.Time, error) {
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	end := now

	if v := c.Query("start"); v != "" {
		t, _, err := parseTime(v, loc)
		if err != nil {
			return start, end, apperror.NewBadRequestError(fmt.Sprintf("Invalid start %q", v))
		}
		start = t
	}
	if v := c.Query("end"); v != "" {
		t, dateOnly, err := parseTime(v, loc)
		if err != nil {
			return start, end, apperror.NewBadRequestError(fmt.Sprintf("Invalid end %q", v))
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		end = t
	}
	if end.Before(start) {
		return start, end, apperror.NewBadRequestError("end must not be before start")
	}
	return start, end, nil
}

func parseTime(v string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, v, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	return t, false, err
}

package handler

import (
	"fmt"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// toDecimal converts a float64 to a decimal.Decimal
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// toSharedFilter converts a list request into a repository filter,
// applying the pagination defaults
func toSharedFilter(req dto.ListRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	return filter
}

// parsePeriod reads the "from" and "to" date query parameters. A missing
// "from" means the beginning of time, a missing "to" means now. The "to"
// day is included in the range.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'from' date, expected YYYY-MM-DD: %s", raw)
		}
		from = parsed
	}

	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'to' date, expected YYYY-MM-DD: %s", raw)
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	} else {
		to = time.Now().UTC()
	}

	if !from.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("'to' must not precede 'from'")
	}
	return from, to, nil
}

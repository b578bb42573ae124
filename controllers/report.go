// controllers/report.go
package controllers

import (
	"net/http"
	"sejenak-backend/analytics"
	"sejenak-backend/models"
	"sejenak-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// TrendReport is the chart-ready payload for a date range
type TrendReport struct {
	Granularity    string                    `json:"granularity"`
	Revenue        []analytics.Bucket        `json:"revenue"`
	TopCategories  []analytics.RankEntry     `json:"topCategories"`
	TopTreatments  []analytics.RankEntry     `json:"topTreatments"`
	TopTherapists  []analytics.RankEntry     `json:"topTherapists"`
	TopCustomers   []analytics.RankEntry     `json:"topCustomers"`
	Retention      analytics.RetentionSplit  `json:"retention"`
	Alerts         []analytics.CustomerAlert `json:"alerts"`
	PointsEarned   int                       `json:"pointsEarned"`
	PointsRedeemed int                       `json:"pointsRedeemed"`
}

// GetTrendAnalytics reduces the branch's bookings over the requested range
// into bucketed series, leaderboards, the retention split, and customer
// alerts. Defaults to the last 30 days.
func (rc *ReportController) GetTrendAnalytics(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
			return
		}
		start = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
			return
		}
		end = utils.EndOfDay(t)
	}
	if end.Before(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "'to' must not be before 'from'")
		return
	}
	category := c.Query("category")

	records, err := reportSvc.FetchBookingRecords(branchUUID, start, end, category)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load booking records")
		return
	}

	// Revenue trends and leaderboards only count completed bookings;
	// alerts need the cancelled and no-show rows.
	completed := make([]analytics.Record, 0, len(records))
	for _, r := range records {
		if r.Status == models.BookingCompleted {
			completed = append(completed, r)
		}
	}

	earned, redeemed := reportSvc.PointsActivity(branchUUID, start, end)

	report := TrendReport{
		Granularity:    analytics.Granularity(start, end),
		Revenue:        analytics.BucketTrend(completed, start, end),
		TopCategories:  analytics.TopCategories(completed),
		TopTreatments:  analytics.TopTreatments(completed),
		TopTherapists:  analytics.TopTherapists(completed),
		TopCustomers:   analytics.TopCustomers(completed),
		Retention:      analytics.Retention(completed),
		Alerts:         analytics.CustomerAlerts(records),
		PointsEarned:   earned,
		PointsRedeemed: redeemed,
	}

	c.JSON(http.StatusOK, report)
}

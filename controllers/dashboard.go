package controllers

import (
	"fmt"
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/models"
	"time"

	"github.com/gin-gonic/gin"
)

type UpcomingEvent struct {
	Name string `json:"name"`
	Date string `json:"date"` // e.g. "Tomorrow", "3 days", etc.
}

type RecentVisit struct {
	Name      string `json:"name"`
	Treatment string `json:"treatment"`
	VisitDate string `json:"visitDate"` // e.g. "Today", "Yesterday"
}

// GetDashboardOverview composes the landing-page summary for the branch.
func GetDashboardOverview(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	// Total Customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Where("branch_id = ? AND deleted_at IS NULL", branchUUID).Count(&totalCustomers)

	// Enrolled Members
	var totalMembers int64
	config.DB.Model(&models.Member{}).Where("branch_id = ?", branchUUID).Count(&totalMembers)

	// This Month's Revenue (completed bookings only)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Booking{}).
		Where("branch_id = ? AND status = ? AND booking_date >= ?", branchUUID, models.BookingCompleted, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	// Total Bookings
	var totalBookings int64
	config.DB.Model(&models.Booking{}).Where("branch_id = ?", branchUUID).Count(&totalBookings)

	// Points outstanding across the program
	var outstandingPoints int64
	config.DB.Model(&models.Member{}).Where("branch_id = ?", branchUUID).
		Select("COALESCE(SUM(current_points), 0)").Scan(&outstandingPoints)

	// Upcoming birthdays (till end of year, ignore year part)
	var upcomingBirthdays []UpcomingEvent
	config.DB.Raw(`
        SELECT name, TO_CHAR(birthday, 'MM-DD') as date FROM customers
        WHERE branch_id = ? AND deleted_at IS NULL
        AND birthday IS NOT NULL
        AND (
            (EXTRACT(MONTH FROM birthday) > ?) OR
            (EXTRACT(MONTH FROM birthday) = ? AND EXTRACT(DAY FROM birthday) >= ?)
        )
        ORDER BY EXTRACT(MONTH FROM birthday), EXTRACT(DAY FROM birthday)
        LIMIT 7
    `, branchUUID, int(now.Month()), int(now.Month()), now.Day()).Scan(&upcomingBirthdays)

	// Recent Visits (last 3 distinct customers)
	var recentVisits []RecentVisit
	rows, err := config.DB.Raw(`
        SELECT c.name, b.treatment_name, b.booking_date
        FROM bookings b
        JOIN customers c ON c.id = b.customer_id
        WHERE b.branch_id = ? AND b.status = ?
        ORDER BY b.booking_date DESC
    `, branchUUID, models.BookingCompleted).Rows()
	if err == nil {
		defer rows.Close()
		seen := make(map[string]bool)
		for rows.Next() {
			var name, treatmentName string
			var bookingDate time.Time
			rows.Scan(&name, &treatmentName, &bookingDate)
			if seen[name] {
				continue
			}
			daysAgo := int(time.Since(bookingDate).Hours() / 24)
			var visitDate string
			switch daysAgo {
			case 0:
				visitDate = "Today"
			case 1:
				visitDate = "Yesterday"
			default:
				visitDate = fmt.Sprintf("%d days ago", daysAgo)
			}
			recentVisits = append(recentVisits, RecentVisit{
				Name:      name,
				Treatment: treatmentName,
				VisitDate: visitDate,
			})
			seen[name] = true
			if len(recentVisits) >= 3 {
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":    totalCustomers,
		"totalMembers":      totalMembers,
		"monthlyRevenue":    monthlyRevenue,
		"totalBookings":     totalBookings,
		"outstandingPoints": outstandingPoints,
		"upcomingBirthdays": upcomingBirthdays,
		"recentVisits":      recentVisits,
	})
}

// services/report_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"sejenak-backend/analytics"
	"sejenak-backend/models"
	"sejenak-backend/utils"
)

// ReportService materializes booking rows for the trend reducers. Fetching
// is the only I/O; all shaping happens in the analytics package.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type bookingRow struct {
	BookingDate   time.Time
	Amount        float64
	Category      string
	TreatmentID   uuid.UUID
	TreatmentName string
	TherapistID   uuid.UUID
	TherapistName string
	CustomerID    uuid.UUID
	CustomerName  string
	Status        string
}

// FetchBookingRecords pages through the branch's bookings in the range,
// then through legacy rows with no branch id, and unions them in memory.
// An optional category narrows the result.
func (s *ReportService) FetchBookingRecords(branchID uuid.UUID, start, end time.Time, category string) ([]analytics.Record, error) {
	scoped, err := s.fetchRows(start, end, category, "b.branch_id = ?", branchID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch bookings: %v", ErrDataUnavailable, err)
	}
	legacy, err := s.fetchRows(start, end, category, "b.branch_id IS NULL")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch legacy bookings: %v", ErrDataUnavailable, err)
	}

	rows := append(scoped, legacy...)
	records := make([]analytics.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, analytics.Record{
			Date:          r.BookingDate,
			Amount:        r.Amount,
			Category:      r.Category,
			TreatmentID:   r.TreatmentID.String(),
			TreatmentName: r.TreatmentName,
			TherapistID:   r.TherapistID.String(),
			TherapistName: r.TherapistName,
			CustomerID:    r.CustomerID.String(),
			CustomerName:  r.CustomerName,
			Status:        r.Status,
		})
	}
	return records, nil
}

func (s *ReportService) fetchRows(start, end time.Time, category, branchCond string, branchArgs ...interface{}) ([]bookingRow, error) {
	cursor := utils.NewCursor(func(limit, offset int) ([]bookingRow, error) {
		query := `
			SELECT b.booking_date, b.amount, b.category,
			       b.treatment_id, b.treatment_name,
			       b.therapist_id, COALESCE(t.name, '') AS therapist_name,
			       b.customer_id, COALESCE(c.name, '') AS customer_name,
			       b.status
			FROM bookings b
			LEFT JOIN therapists t ON t.id = b.therapist_id
			LEFT JOIN customers c ON c.id = b.customer_id
			WHERE ` + branchCond + ` AND b.booking_date BETWEEN ? AND ?`
		args := append(append([]interface{}{}, branchArgs...), start, end)
		if category != "" {
			query += " AND b.category = ?"
			args = append(args, category)
		}
		query += " ORDER BY b.booking_date ASC LIMIT ? OFFSET ?"
		args = append(args, limit, offset)

		var page []bookingRow
		err := s.db.Raw(query, args...).Scan(&page).Error
		return page, err
	})

	return cursor.All()
}

// PointsActivity sums earned and redeemed points in range. The history
// table is an auxiliary source here: when it cannot be read the figures
// degrade to zero instead of failing the whole report.
func (s *ReportService) PointsActivity(branchID uuid.UUID, start, end time.Time) (earned, redeemed int) {
	err := s.db.Model(&models.PointsHistoryEntry{}).
		Where("branch_id = ? AND type = ? AND recorded_at BETWEEN ? AND ?",
			branchID, models.EntryEarned, start, end).
		Select("COALESCE(SUM(delta), 0)").Scan(&earned).Error
	if err != nil {
		log.Warn().Err(err).Msg("Points history unavailable, earned degraded to 0")
		earned = 0
	}

	err = s.db.Model(&models.PointsHistoryEntry{}).
		Where("branch_id = ? AND type = ? AND recorded_at BETWEEN ? AND ?",
			branchID, models.EntryRedeemed, start, end).
		Select("COALESCE(SUM(-delta), 0)").Scan(&redeemed).Error
	if err != nil {
		log.Warn().Err(err).Msg("Points history unavailable, redeemed degraded to 0")
		redeemed = 0
	}
	return earned, redeemed
}

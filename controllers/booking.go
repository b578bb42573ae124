// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"sejenak-backend/config"
	"sejenak-backend/models"
	"sejenak-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	CustomerID  uuid.UUID  `json:"customerId" binding:"required"`
	TreatmentID uuid.UUID  `json:"treatmentId" binding:"required"`
	TherapistID uuid.UUID  `json:"therapistId" binding:"required"`
	BookingDate *time.Time `json:"bookingDate"`
	Amount      *float64   `json:"amount"` // overrides the treatment price when set
	Notes       string     `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	BookingDate *time.Time `json:"bookingDate"`
	TherapistID *uuid.UUID `json:"therapistId"`
	Amount      *float64   `json:"amount" binding:"omitempty,min=0"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending completed cancelled no_show"`
	Notes       *string    `json:"notes"`
}

// CreateBooking creates a new booking for the branch
func CreateBooking(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate customer exists in the same branch
	var customer models.Customer
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate treatment exists and belongs to the same branch
	var treatment models.Treatment
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, input.TreatmentID).
		First(&treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Treatment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate therapist exists and belongs to the same branch
	var therapist models.Therapist
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, input.TherapistID).
		First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Therapist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	bookingDate := time.Now()
	if input.BookingDate != nil {
		bookingDate = *input.BookingDate
	}
	amount := treatment.Price
	if input.Amount != nil {
		amount = *input.Amount
	}

	booking := models.Booking{
		ID:              uuid.New(),
		BranchID:        &branchUUID,
		CreatedByUserID: userUUID,
		CustomerID:      customer.ID,
		TreatmentID:     treatment.ID,
		TherapistID:     therapist.ID,
		TreatmentName:   treatment.Name,
		Category:        treatment.Category,
		BookingDate:     bookingDate,
		Amount:          amount,
		Status:          models.BookingPending,
		Notes:           input.Notes,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves bookings for the branch, optionally filtered by
// status and date range
func GetBookings(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	query := config.DB.Where("branch_id = ?", branchUUID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("booking_date >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("booking_date <= ?", utils.EndOfDay(t))
		}
	}

	var bookings []models.Booking
	if err := query.Order("booking_date desc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND (branch_id = ? OR branch_id IS NULL)", bookingUUID, branchUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking updates an existing booking. Completing a booking bumps the
// customer's visit counters; points are earned through the explicit earn
// endpoint.
func UpdateBooking(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND (branch_id = ? OR branch_id IS NULL)", bookingUUID, branchUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.TherapistID != nil {
		var therapist models.Therapist
		if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, *input.TherapistID).
			First(&therapist).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Therapist not found")
			return
		}
		booking.TherapistID = therapist.ID
	}
	if input.Amount != nil {
		booking.Amount = *input.Amount
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	completing := input.Status != nil && *input.Status == models.BookingCompleted &&
		booking.Status != models.BookingCompleted
	if input.Status != nil {
		booking.Status = *input.Status
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if completing {
		now := time.Now()
		config.DB.Model(&models.Customer{}).Where("id = ?", booking.CustomerID).
			Updates(map[string]interface{}{
				"total_visits": gorm.Expr("total_visits + 1"),
				"total_spent":  gorm.Expr("total_spent + ?", booking.Amount),
				"last_visit":   now,
			})
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking deletes a booking
func DeleteBooking(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ? AND branch_id = ?", bookingUUID, branchUUID).
		Delete(&models.Booking{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

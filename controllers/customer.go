package controllers

import (
	"errors"
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/models"
	"sejenak-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone" binding:"required"`
	Email    *string    `json:"email"` // Pointer to allow null
	Birthday *time.Time `json:"birthday"`
	Notes    string     `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name                 *string       `json:"name"`
	Phone                *string       `json:"phone"`
	Email                *string       `json:"email"`
	Birthday             *time.Time    `json:"birthday"`
	Notes                *string       `json:"notes"`
	IsActive             *bool         `json:"isActive"`
	Preferences          *models.JSONB `json:"preferences"`
	NotificationSettings *models.JSONB `json:"notificationSettings"`
}

// CreateCustomer creates a new customer for the branch
func CreateCustomer(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this branch
	var existingCustomer models.Customer
	if err := config.DB.Where("branch_id = ? AND phone = ?", branchUUID, input.Phone).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		BranchID:             branchUUID,
		CreatedByUserID:      userUUID,
		Name:                 input.Name,
		Phone:                input.Phone,
		Birthday:             input.Birthday,
		Notes:                input.Notes,
		IsActive:             true,
		Preferences:          models.JSONB{},
		NotificationSettings: models.JSONB{},
	}

	if input.Email != nil {
		customer.Email = *input.Email
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers for the branch
func GetCustomers(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("branch_id = ?", branchUUID).Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		// Check if phone is being changed to another existing customer
		if customer.Phone != *input.Phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("branch_id = ? AND phone = ?", branchUUID, *input.Phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Birthday != nil {
		customer.Birthday = input.Birthday
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}
	if input.Preferences != nil {
		customer.Preferences = *input.Preferences
	}
	if input.NotificationSettings != nil {
		customer.NotificationSettings = *input.NotificationSettings
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, customerUUID).
		Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

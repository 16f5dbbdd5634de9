package dto

import "github.com/zennara-clinics/booking-api/internal/models"

type AdminBookingListQuery struct {
	Status   string `form:"status"`
	BranchID uint   `form:"branch_id"`
	Date     string `form:"date"` // YYYY-MM-DD
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AdminBookingListResponse struct {
	Data     []models.Booking `json:"data"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

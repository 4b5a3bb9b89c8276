package api

import (
	"time"

	"github.com/levietphu/campuspark/internal/models"
	"github.com/shopspring/decimal"
)

// Wire DTOs for the campus backend. Field names follow its JSON contract;
// nothing outside this package sees them.

type studentPayload struct {
	StudentID   string          `json:"ma_sv"`
	DisplayName string          `json:"ho_ten"`
	Balance     decimal.Decimal `json:"so_tien_hien_co"`
	RFIDTag     string          `json:"id_rfid"`
}

func (p studentPayload) profile() models.UserProfile {
	return models.UserProfile{
		StudentID:   p.StudentID,
		DisplayName: p.DisplayName,
		Balance:     p.Balance,
		RFIDTag:     p.RFIDTag,
	}
}

type loginRequest struct {
	StudentID string `json:"ma_sv"`
	Password  string `json:"mat_khau"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Student *studentPayload `json:"sinh_vien"`
}

type historyPayload struct {
	ID        int64          `json:"ma_lich_su"`
	Student   studentPayload `json:"sinh_vien"`
	Plate     string         `json:"bien_so_xe"`
	EntryTime time.Time      `json:"thoi_gian_vao"`
	ExitTime  *time.Time     `json:"thoi_gian_ra"`
	Status    string         `json:"trang_thai"`
}

func (p historyPayload) record() models.HistoryRecord {
	status := p.Status
	if status == "" {
		if p.ExitTime != nil {
			status = models.HistoryStatusCompleted
		} else {
			status = models.HistoryStatusActive
		}
	}
	return models.HistoryRecord{
		ID:        p.ID,
		StudentID: p.Student.StudentID,
		Plate:     p.Plate,
		EntryTime: p.EntryTime,
		ExitTime:  p.ExitTime,
		Status:    status,
	}
}

type topUpRequest struct {
	StudentID     string          `json:"sinh_vien_id"`
	Amount        decimal.Decimal `json:"so_tien"`
	Method        string          `json:"phuong_thuc"`
	TransactionID string          `json:"ma_giao_dich"`
	Note          string          `json:"ghi_chu"`
}

type topUpResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"ma_giao_dich"`
}

// errorBody covers the two error message shapes the backend emits.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Detail
}

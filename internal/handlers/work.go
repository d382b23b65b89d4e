package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/orderform"
	"autoservice/internal/validation"
)

type WorkHandler struct {
	db *gorm.DB
}

func NewWorkHandler(db *gorm.DB) *WorkHandler {
	return &WorkHandler{db: db}
}

func (h *WorkHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/works", h.List)
	mux.HandleFunc("POST /api/works", h.Create)
	mux.HandleFunc("PUT /api/works/{id}", h.Update)
	mux.HandleFunc("DELETE /api/works/{id}", h.Delete)
}

// workRow extends the record with the assigned master's name and the
// derived billing fields the UI shows.
type workRow struct {
	models.Work
	MasterName      *string `json:"master_name"`
	TotalWorkCost   float64 `json:"total_work_cost"`
	DiscountDisplay string  `json:"discount_display"`
}

func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(r.URL.Query().Get("account"))
	if err != nil || accountID <= 0 {
		badRequest(w)
		return
	}

	var works []workRow
	err = h.db.Model(&models.Work{}).
		Select("t_work.*, t_master.name AS master_name").
		Joins("LEFT JOIN t_master ON t_master.id_master = t_work.id_master").
		Where("t_work.id_account = ?", accountID).
		Order("t_work.id_work DESC").
		Find(&works).Error
	if err != nil {
		serverError(w)
		return
	}

	for i := range works {
		works[i].TotalWorkCost = works[i].LineTotal()
		works[i].DiscountDisplay = orderform.DiscountDisplay(works[i].Discount)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": works})
}

type workPayload struct {
	AccountID   uint    `json:"id_account"`
	MasterID    *uint   `json:"id_master"`
	Description string  `json:"description"`
	Cost        float64 `json:"work_cost"`
	Hours       float64 `json:"work_hours"`
	Discount    float64 `json:"discount"`
	Date        string  `json:"date"`
}

func (p *workPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.PositiveID("id_account", p.AccountID, v)
	if p.MasterID != nil {
		validation.PositiveID("id_master", *p.MasterID, v)
	}
	validation.Required("date", p.Date, v)
	validation.NonNegative("work_hours", p.Hours, v)
	validation.MaxLen("description", p.Description, 200, v)
	// empty descriptions get the stock placeholder
	if strings.TrimSpace(p.Description) == "" {
		p.Description = "Без названия"
	}
	return v
}

func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload workPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	work := models.Work{
		AccountID:   payload.AccountID,
		MasterID:    payload.MasterID,
		Description: payload.Description,
		Cost:        payload.Cost,
		Hours:       payload.Hours,
		Discount:    payload.Discount,
		Date:        payload.Date,
	}
	if err := h.db.Create(&work).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_work": work.ID})
}

func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var work models.Work
	if err := h.db.First(&work, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload workPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	work.AccountID = payload.AccountID
	work.MasterID = payload.MasterID
	work.Description = payload.Description
	work.Cost = payload.Cost
	work.Hours = payload.Hours
	work.Discount = payload.Discount
	work.Date = payload.Date
	if err := h.db.Save(&work).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete removes the work together with its parts.
func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM t_part WHERE id_work = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Work{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		notFound(w)
		return
	}
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

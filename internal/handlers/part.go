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

type PartHandler struct {
	db *gorm.DB
}

func NewPartHandler(db *gorm.DB) *PartHandler {
	return &PartHandler{db: db}
}

func (h *PartHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/parts", h.List)
	mux.HandleFunc("POST /api/parts", h.Create)
	mux.HandleFunc("PUT /api/parts/{id}", h.Update)
	mux.HandleFunc("DELETE /api/parts/{id}", h.Delete)
}

type partRow struct {
	models.Part
	TotalPartCost   float64 `json:"total_part_cost"`
	DiscountDisplay string  `json:"discount_display"`
}

func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	workID, err := strconv.Atoi(r.URL.Query().Get("work"))
	if err != nil || workID <= 0 {
		badRequest(w)
		return
	}

	var parts []partRow
	err = h.db.Model(&models.Part{}).
		Where("id_work = ?", workID).
		Order("id_part DESC").
		Find(&parts).Error
	if err != nil {
		serverError(w)
		return
	}

	for i := range parts {
		parts[i].TotalPartCost = parts[i].LineTotal()
		parts[i].DiscountDisplay = orderform.DiscountDisplay(parts[i].Discount)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": parts})
}

type partPayload struct {
	WorkID      uint    `json:"id_work"`
	Description string  `json:"description"`
	Unit        *string `json:"part_unit"`
	Count       float64 `json:"part_count"`
	Cost        float64 `json:"part_cost"`
	Discount    float64 `json:"discount"`
}

func (p *partPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.PositiveID("id_work", p.WorkID, v)
	validation.NonNegative("part_count", p.Count, v)
	validation.MaxLen("description", p.Description, 200, v)
	if strings.TrimSpace(p.Description) == "" {
		p.Description = "Без названия"
	}
	return v
}

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload partPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	part := models.Part{
		WorkID:      payload.WorkID,
		Description: payload.Description,
		Unit:        payload.Unit,
		Count:       payload.Count,
		Cost:        payload.Cost,
		Discount:    payload.Discount,
	}
	if err := h.db.Create(&part).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_part": part.ID})
}

func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var part models.Part
	if err := h.db.First(&part, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload partPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	part.WorkID = payload.WorkID
	part.Description = payload.Description
	part.Unit = payload.Unit
	part.Count = payload.Count
	part.Cost = payload.Cost
	part.Discount = payload.Discount
	if err := h.db.Save(&part).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	res := h.db.Delete(&models.Part{}, id)
	if res.Error != nil {
		serverError(w)
		return
	}
	if res.RowsAffected == 0 {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

package handlers

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/validation"
)

type AutoHandler struct {
	db *gorm.DB
}

func NewAutoHandler(db *gorm.DB) *AutoHandler {
	return &AutoHandler{db: db}
}

func (h *AutoHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/autos", h.List)
	mux.HandleFunc("POST /api/autos", h.Create)
	mux.HandleFunc("GET /api/autos/{id}", h.Get)
	mux.HandleFunc("PUT /api/autos/{id}", h.Update)
	mux.HandleFunc("DELETE /api/autos/{id}", h.Delete)
}

// autoRow extends the record with the owner's name for the list screen.
type autoRow struct {
	models.Auto
	ClientName string `json:"client_name"`
}

func (h *AutoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, offset := pageOffset(r)

	db := h.db.Model(&models.Auto{})
	if clientID, err := strconv.Atoi(r.URL.Query().Get("client")); err == nil && clientID > 0 {
		db = db.Where("t_auto.id_client = ?", clientID)
	}
	if query := r.URL.Query().Get("q"); query != "" {
		db = db.Where("LOWER(vin) LIKE LOWER(?) OR LOWER(plate_number) LIKE LOWER(?)",
			"%"+query+"%", "%"+query+"%")
	}

	var total int64
	db.Count(&total)

	var autos []autoRow
	err := db.
		Select("t_auto.*, t_client.name AS client_name").
		Joins("JOIN t_client ON t_client.id_client = t_auto.id_client").
		Order("t_auto.id_auto DESC").
		Limit(pageSize).Offset(offset).
		Find(&autos).Error
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, listPayload(autos, total, page))
}

func (h *AutoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var auto models.Auto
	if err := h.db.First(&auto, id).Error; err != nil {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, auto)
}

type autoPayload struct {
	ClientID    uint    `json:"id_client"`
	VIN         string  `json:"vin"`
	PlateNumber string  `json:"plate_number"`
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
}

func (p autoPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.PositiveID("id_client", p.ClientID, v)
	validation.Required("vin", p.VIN, v)
	validation.MaxLen("vin", p.VIN, 17, v)
	validation.Required("plate_number", p.PlateNumber, v)
	validation.MaxLen("plate_number", p.PlateNumber, 20, v)
	return v
}

func (h *AutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload autoPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	auto := models.Auto{
		ClientID:    payload.ClientID,
		VIN:         payload.VIN,
		PlateNumber: payload.PlateNumber,
		Brand:       payload.Brand,
		Model:       payload.Model,
	}
	if err := h.db.Create(&auto).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_auto": auto.ID})
}

func (h *AutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var auto models.Auto
	if err := h.db.First(&auto, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload autoPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	auto.ClientID = payload.ClientID
	auto.VIN = payload.VIN
	auto.PlateNumber = payload.PlateNumber
	auto.Brand = payload.Brand
	auto.Model = payload.Model
	if err := h.db.Save(&auto).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete removes the auto together with its accounts, works and parts.
func (h *AutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM t_part WHERE id_work IN (
			SELECT id_work FROM t_work WHERE id_account IN (
				SELECT id_account FROM t_account WHERE id_auto = ?))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_work WHERE id_account IN (
			SELECT id_account FROM t_account WHERE id_auto = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_account WHERE id_auto = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Auto{}, id)
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

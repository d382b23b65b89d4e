package handlers

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/validation"
)

type AccountHandler struct {
	db *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{db: db}
}

func (h *AccountHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/accounts", h.List)
	mux.HandleFunc("POST /api/accounts", h.Create)
	mux.HandleFunc("GET /api/accounts/{id}", h.Get)
	mux.HandleFunc("PUT /api/accounts/{id}", h.Update)
	mux.HandleFunc("DELETE /api/accounts/{id}", h.Delete)
}

// accountRow extends the record with the vehicle's VIN for the list screen.
type accountRow struct {
	models.Account
	AutoVIN string `json:"auto_vin"`
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	page, offset := pageOffset(r)

	db := h.db.Model(&models.Account{})
	if autoID, err := strconv.Atoi(r.URL.Query().Get("auto")); err == nil && autoID > 0 {
		db = db.Where("t_account.id_auto = ?", autoID)
	}
	if query := r.URL.Query().Get("q"); query != "" {
		db = db.Where("LOWER(legal_number) LIKE LOWER(?)", "%"+query+"%")
	}

	var total int64
	db.Count(&total)

	var accounts []accountRow
	err := db.
		Select("t_account.*, t_auto.vin AS auto_vin").
		Joins("JOIN t_auto ON t_auto.id_auto = t_account.id_auto").
		Order("t_account.id_account DESC").
		Limit(pageSize).Offset(offset).
		Find(&accounts).Error
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, listPayload(accounts, total, page))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var account models.Account
	if err := h.db.First(&account, id).Error; err != nil {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, account)
}

type accountPayload struct {
	AutoID      uint    `json:"id_auto"`
	Date        string  `json:"date"`
	LegalNumber string  `json:"legal_number"`
	Info        *string `json:"info"`
}

func (p accountPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.PositiveID("id_auto", p.AutoID, v)
	validation.Required("date", p.Date, v)
	validation.Required("legal_number", p.LegalNumber, v)
	validation.MaxLen("legal_number", p.LegalNumber, 200, v)
	return v
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload accountPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	account := models.Account{
		AutoID:      payload.AutoID,
		Date:        payload.Date,
		LegalNumber: payload.LegalNumber,
		Info:        payload.Info,
	}
	if err := h.db.Create(&account).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_account": account.ID})
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var account models.Account
	if err := h.db.First(&account, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload accountPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	account.AutoID = payload.AutoID
	account.Date = payload.Date
	account.LegalNumber = payload.LegalNumber
	account.Info = payload.Info
	if err := h.db.Save(&account).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete removes the account together with its works and their parts.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM t_part WHERE id_work IN (
			SELECT id_work FROM t_work WHERE id_account = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_work WHERE id_account = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Account{}, id)
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

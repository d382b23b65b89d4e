package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/validation"
)

// CompanyHandler edits the single company record printed on documents.
type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

func (h *CompanyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/company", h.Get)
	mux.HandleFunc("PUT /api/company", h.Update)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	err := h.db.First(&company, models.CompanyID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(w)
		return
	}
	// not found: return an empty record for the settings form
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company.ID = models.CompanyID
	}
	httpx.JSON(w, http.StatusOK, company)
}

type companyPayload struct {
	LegalName string `json:"legal_name"`
	ShortName string `json:"short_name"`
	Address   string `json:"address"`
	INN       string `json:"inn"`
	KPP       string `json:"kpp"`
	Phone     string `json:"phone"`
	FoundedAt string `json:"founded_at"`
}

func (p companyPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.MaxLen("legal_name", p.LegalName, 200, v)
	validation.MaxLen("short_name", p.ShortName, 200, v)
	validation.MaxLen("address", p.Address, 200, v)
	validation.MaxLen("inn", p.INN, 12, v)
	validation.MaxLen("kpp", p.KPP, 9, v)
	return v
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload companyPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	company := models.Company{
		ID:        models.CompanyID,
		LegalName: payload.LegalName,
		ShortName: payload.ShortName,
		Address:   payload.Address,
		INN:       payload.INN,
		KPP:       payload.KPP,
		Phone:     payload.Phone,
		FoundedAt: payload.FoundedAt,
	}
	if err := h.db.Save(&company).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

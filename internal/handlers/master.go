package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/validation"
)

type MasterHandler struct {
	db *gorm.DB
}

func NewMasterHandler(db *gorm.DB) *MasterHandler {
	return &MasterHandler{db: db}
}

func (h *MasterHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/masters", h.List)
	mux.HandleFunc("POST /api/masters", h.Create)
	mux.HandleFunc("PUT /api/masters/{id}", h.Update)
	mux.HandleFunc("DELETE /api/masters/{id}", h.Delete)
}

func (h *MasterHandler) List(w http.ResponseWriter, r *http.Request) {
	var masters []models.Master
	if err := h.db.Order("id_master DESC").Find(&masters).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": masters})
}

type masterPayload struct {
	Name string `json:"name"`
}

func (p masterPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", p.Name, v)
	validation.MaxLen("name", p.Name, 200, v)
	return v
}

func (h *MasterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload masterPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	master := models.Master{Name: payload.Name}
	if err := h.db.Create(&master).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_master": master.ID})
}

func (h *MasterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var master models.Master
	if err := h.db.First(&master, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload masterPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	master.Name = payload.Name
	if err := h.db.Save(&master).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete unassigns the master from its works before removing it, so work
// history survives staff changes.
func (h *MasterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Work{}).Where("id_master = ?", id).
			Update("id_master", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Master{}, id)
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

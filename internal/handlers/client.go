package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"autoservice/internal/httpx"
	"autoservice/internal/models"
	"autoservice/internal/validation"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

func (h *ClientHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/clients", h.List)
	mux.HandleFunc("POST /api/clients", h.Create)
	mux.HandleFunc("GET /api/clients/{id}", h.Get)
	mux.HandleFunc("PUT /api/clients/{id}", h.Update)
	mux.HandleFunc("DELETE /api/clients/{id}", h.Delete)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, offset := pageOffset(r)
	query := r.URL.Query().Get("q")

	db := h.db.Model(&models.Client{})
	if query != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}

	var total int64
	db.Count(&total)

	var clients []models.Client
	if err := db.Order("id_client DESC").Limit(pageSize).Offset(offset).Find(&clients).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, listPayload(clients, total, page))
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

type clientPayload struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
	Info    *string `json:"info"`
}

func (p clientPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", p.Name, v)
	validation.MaxLen("name", p.Name, 200, v)
	validation.Required("phone", p.Phone, v)
	validation.MaxLen("phone", p.Phone, 50, v)
	return v
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload clientPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	client := models.Client{Name: payload.Name, Phone: payload.Phone, Address: payload.Address, Info: payload.Info}
	if err := h.db.Create(&client).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id_client": client.ID})
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}
	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		notFound(w)
		return
	}

	var payload clientPayload
	if err := decode(r, &payload); err != nil {
		badRequest(w)
		return
	}
	if v := payload.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	client.Name = payload.Name
	client.Phone = payload.Phone
	client.Address = payload.Address
	client.Info = payload.Info
	if err := h.db.Save(&client).Error; err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete removes the client together with its autos, accounts, works and
// parts in one transaction, mirroring the manual cascade of the schema.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM t_part WHERE id_work IN (
			SELECT id_work FROM t_work WHERE id_account IN (
				SELECT id_account FROM t_account WHERE id_auto IN (
					SELECT id_auto FROM t_auto WHERE id_client = ?)))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_work WHERE id_account IN (
			SELECT id_account FROM t_account WHERE id_auto IN (
				SELECT id_auto FROM t_auto WHERE id_client = ?))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_account WHERE id_auto IN (
			SELECT id_auto FROM t_auto WHERE id_client = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM t_auto WHERE id_client = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Client{}, id)
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

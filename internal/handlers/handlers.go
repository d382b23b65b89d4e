// Package handlers exposes the JSON API the desktop UI talks to: one
// CRUD handler per entity plus the order-form generation endpoint.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"autoservice/internal/httpx"
)

const pageSize = 20

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pageOffset(r *http.Request) (page, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * pageSize
}

func badRequest(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
}

func notFound(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
}

func serverError(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}

func listPayload(items any, total int64, page int) map[string]any {
	return map[string]any{
		"items": items,
		"total": total,
		"page":  page,
		"limit": pageSize,
	}
}

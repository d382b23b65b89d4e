package main

import (
	"net/http"

	"gorm.io/gorm"

	"autoservice/internal/handlers"
	"autoservice/internal/orderform"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, orderForms *orderform.Service) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
	}

	for _, h := range []interface {
		Register(mux *http.ServeMux)
	}{
		handlers.NewClientHandler(db),
		handlers.NewAutoHandler(db),
		handlers.NewAccountHandler(db),
		handlers.NewWorkHandler(db),
		handlers.NewPartHandler(db),
		handlers.NewMasterHandler(db),
		handlers.NewCompanyHandler(db),
		handlers.NewOrderFormHandler(orderForms),
	} {
		h.Register(app.mux)
	}

	app.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return app
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

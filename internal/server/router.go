// Package server wires handlers, session middleware and the authorization
// gate into the root http.Handler.
package server

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/gate"
	"github.com/archemics/salessnap/internal/handlers"
	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/store"
)

// Deps carries the long-lived collaborators the router needs.
type Deps struct {
	Store    *store.Store
	Users    *auth.Store
	Renderer *pdf.Renderer
	Log      *logrus.Logger
}

// newGate registers the role policies: user management is admin territory,
// sample requests and delivery notes are open to everyone except that only
// managers and admins may approve or reject.
func newGate() *gate.Gate {
	g := gate.New()
	g.Register(handlers.ResourceUser, gate.AllowRoles(models.RoleAdmin))
	g.Register(handlers.ResourceSampleRequest, gate.AllowAllButApprove(models.RoleManager, models.RoleAdmin))
	g.Register(handlers.ResourceDeliveryNote, gate.AllowAllButApprove(models.RoleManager, models.RoleAdmin))
	return g
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	g := newGate()
	mux := http.NewServeMux()

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ah := handlers.NewAuthHandler(d.Users)
	mux.Handle("/auth/login", auth.Middleware(method(http.MethodPost, ah.Login)))
	mux.Handle("/auth/logout", auth.Middleware(method(http.MethodPost, ah.Logout)))
	mux.Handle("/auth/me", auth.Middleware(method(http.MethodGet, ah.Me)))

	ch := handlers.NewClientHandler(d.Store)
	mux.Handle("/clients", protect(crud(ch.List, ch.Create, ch.Update, ch.Delete)))
	mux.Handle("/clients/get", protect(method(http.MethodGet, ch.Get)))

	ph := handlers.NewProductHandler(d.Store)
	mux.Handle("/products", protect(crud(ph.List, ph.Create, ph.Update, ph.Delete)))
	mux.Handle("/products/get", protect(method(http.MethodGet, ph.Get)))

	qh := handlers.NewQuotationHandler(d.Store, d.Users, d.Renderer)
	mux.Handle("/quotations", protect(crud(qh.List, qh.Create, qh.Update, qh.Delete)))
	mux.Handle("/quotations/get", protect(method(http.MethodGet, qh.Get)))
	mux.Handle("/quotations/pdf", protect(method(http.MethodGet, qh.ExportPDF)))

	rh := handlers.NewRequestHandler(d.Store, d.Users, g, d.Renderer)
	mux.Handle("/samples", protect(listCreate(rh.ListSamples, rh.CreateSample)))
	mux.Handle("/samples/approve", protect(status(rh.SetSampleStatus, models.RequestApproved)))
	mux.Handle("/samples/reject", protect(status(rh.SetSampleStatus, models.RequestRejected)))
	mux.Handle("/samples/deliver", protect(status(rh.SetSampleStatus, models.RequestDelivered)))

	mux.Handle("/delivery-notes", protect(listCreate(rh.ListDeliveryNotes, rh.CreateDeliveryNote)))
	mux.Handle("/delivery-notes/approve", protect(status(rh.SetDeliveryNoteStatus, models.RequestApproved)))
	mux.Handle("/delivery-notes/reject", protect(status(rh.SetDeliveryNoteStatus, models.RequestRejected)))
	mux.Handle("/delivery-notes/deliver", protect(status(rh.SetDeliveryNoteStatus, models.RequestDelivered)))
	mux.Handle("/delivery-notes/pdf", protect(method(http.MethodGet, rh.ExportDeliveryNotePDF)))

	dh := handlers.NewDocumentHandler(d.Store)
	mux.Handle("/documents", protect(listCreate(dh.List, dh.Create)))
	mux.Handle("/documents/delete", protect(method(http.MethodPost, dh.Delete)))

	uh := handlers.NewUserHandler(d.Users, g)
	mux.Handle("/users", protect(crud(uh.List, uh.Create, uh.Update, nil)))
	mux.Handle("/users/toggle-active", protect(method(http.MethodPost, uh.ToggleActive)))
	mux.Handle("/users/password", protect(method(http.MethodPost, uh.ChangePassword)))

	sh := handlers.NewDashboardHandler(d.Store)
	mux.Handle("/dashboard/stats", protect(method(http.MethodGet, sh.Stats)))

	return withRecover(d.Log, withLogging(d.Log, mux))
}

func protect(h http.Handler) http.Handler {
	return auth.Middleware(auth.RequireAuth(h))
}

func method(m string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			w.Header().Set("Allow", m)
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		fn(w, r)
	})
}

func listCreate(list, create http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
}

// crud dispatches GET/POST/PUT/DELETE on a single collection path; an entry
// may be nil when the verb is not offered.
func crud(list, create, update, del http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fn http.HandlerFunc
		switch r.Method {
		case http.MethodGet:
			fn = list
		case http.MethodPost:
			fn = create
		case http.MethodPut:
			fn = update
		case http.MethodDelete:
			fn = del
		}
		if fn == nil {
			w.Header().Set("Allow", "GET,POST,PUT,DELETE")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		fn(w, r)
	})
}

func status(fn func(http.ResponseWriter, *http.Request, models.RequestStatus), s models.RequestStatus) http.Handler {
	return method(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, s)
	})
}

func withLogging(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func withRecover(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithField("panic", rec).Error("handler panicked")
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Package webui serves the server-rendered views: medicine list and form,
// bill composition, bill history, and operator sign-in. All medicine and bill
// data comes from the backend API; only operator accounts and in-progress
// carts are local.
package webui

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"medimanager/m/domain"
	"medimanager/m/internal/apiclient"
	"medimanager/m/internal/auth"
	"medimanager/m/internal/store"
)

const (
	lowStockThreshold = 5
	expiryWindowDays  = 30

	sessionCookie = "medimanager_session"
	flashCookie   = "flash"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

//go:embed templates/*.html
var templateFS embed.FS

// Handler bundles dependencies for the HTML handlers.
type Handler struct {
	api    *apiclient.Client
	store  *store.Store
	secret string
	tmpl   *template.Template
}

// New constructs a Handler and parses the embedded templates.
func New(api *apiclient.Client, st *store.Store, secret string) *Handler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"date":  formatDate,
	}).ParseFS(templateFS, "templates/*.html"))
	return &Handler{api: api, store: st, secret: secret, tmpl: tmpl}
}

// Router wires up the web UI routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)

	r.Group(func(pr chi.Router) {
		pr.Use(h.sessionMiddleware)

		pr.Get("/", h.medicinesList)

		pr.Route("/medicines", func(r chi.Router) {
			r.Get("/add", h.medicineAddForm)
			r.Post("/add", h.medicineAdd)
			r.Get("/edit/{id}", h.medicineEditForm)
			r.Post("/edit/{id}", h.medicineEdit)
			r.Post("/delete/{id}", h.medicineDelete)
		})

		pr.Route("/billing", func(r chi.Router) {
			r.Get("/", h.billingPage)
			r.Post("/items", h.billingAddItem)
			r.Post("/items/remove", h.billingRemoveItem)
			r.Post("/submit", h.billingSubmit)
		})

		pr.Route("/bills", func(r chi.Router) {
			r.Get("/", h.billsList)
			r.Get("/{id}", h.billDetail)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Session handling

func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		claims, err := auth.ParseToken(h.secret, cookie.Value)
		if err != nil {
			clearCookie(w, sessionCookie)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ctxClaims).(*auth.Claims)
	return claims
}

// Flash notifications, carried across a redirect in a one-shot cookie.

type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	clearCookie(w, flashCookie)
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
}

// Rendering

// page carries the fields every view needs.
type page struct {
	Active   string
	Username string
	Flash    *Flash
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, active string) page {
	p := page{Active: active, Flash: popFlash(w, r)}
	if claims := claimsFrom(r.Context()); claims != nil {
		p.Username = claims.Username
	}
	return p
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formatDate(value string) string {
	raw, _, _ := strings.Cut(value, "T")
	parsed, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return value
	}
	return parsed.Format("Jan 02, 2006")
}

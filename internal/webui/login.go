package webui

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medimanager/m/internal/auth"
)

type loginPage struct {
	Error string
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if _, err := auth.ParseToken(h.secret, cookie.Value); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}
	h.render(w, http.StatusOK, "login", loginPage{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		h.render(w, http.StatusBadRequest, "login", loginPage{Error: "Username and password are required"})
		return
	}

	operator, err := h.store.OperatorByUsername(username)
	if err != nil {
		h.render(w, http.StatusUnauthorized, "login", loginPage{Error: "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(password)) != nil {
		h.render(w, http.StatusUnauthorized, "login", loginPage{Error: "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(h.secret, operator)
	if err != nil {
		h.render(w, http.StatusInternalServerError, "login", loginPage{Error: "Unable to start session"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, sessionCookie)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

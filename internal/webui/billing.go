package webui

import (
	"log"
	"net/http"
	"strconv"

	"medimanager/m/domain"
	"medimanager/m/internal/billing"
)

type billingPage struct {
	page
	Medicines []domain.Medicine
	Items     []domain.BillItem
	Total     float64
}

func (h *Handler) billingPage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	data := billingPage{page: h.page(w, r, "billing")}

	medicines, err := h.api.ListMedicines(r.Context())
	if err != nil {
		data.Flash = &Flash{Kind: "error", Message: "Failed to fetch medicines"}
	}
	data.Medicines = medicines

	items, err := h.store.CartItems(claims.UserID)
	if err != nil {
		log.Printf("load cart for operator %d: %v", claims.UserID, err)
		h.render(w, http.StatusInternalServerError, "billing", data)
		return
	}
	cart := billing.Cart{Items: items}
	data.Items = cart.Items
	data.Total = cart.Total()
	h.render(w, http.StatusOK, "billing", data)
}

func (h *Handler) billingAddItem(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	medicineID, _ := strconv.ParseInt(r.FormValue("medicine_id"), 10, 64)
	quantity, _ := strconv.ParseInt(r.FormValue("quantity"), 10, 64)

	// Validate against a fresh snapshot of known stock. Advisory only: the
	// backend does the authoritative check at submission.
	medicines, err := h.api.ListMedicines(r.Context())
	if err != nil {
		setFlash(w, "error", "Failed to fetch medicines")
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}
	var selected *domain.Medicine
	for i := range medicines {
		if medicines[i].ID == medicineID {
			selected = &medicines[i]
			break
		}
	}

	items, err := h.store.CartItems(claims.UserID)
	if err != nil {
		setFlash(w, "error", "Failed to load cart")
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}
	cart := billing.Cart{Items: items}
	if err := cart.AddItem(selected, quantity); err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}
	added := cart.Items[len(cart.Items)-1]
	if err := h.store.AppendCartItem(claims.UserID, added); err != nil {
		setFlash(w, "error", "Failed to save cart")
	}
	http.Redirect(w, r, "/billing", http.StatusSeeOther)
}

func (h *Handler) billingRemoveItem(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	position, err := strconv.Atoi(r.FormValue("position"))
	if err != nil {
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}
	if err := h.store.RemoveCartItem(claims.UserID, position); err != nil {
		setFlash(w, "error", "Failed to update cart")
	}
	http.Redirect(w, r, "/billing", http.StatusSeeOther)
}

func (h *Handler) billingSubmit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	items, err := h.store.CartItems(claims.UserID)
	if err != nil {
		setFlash(w, "error", "Failed to load cart")
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}

	cart := billing.Cart{Items: items}
	if cart.Empty() {
		setFlash(w, "error", "Please add at least one item")
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}

	if _, err := h.api.CreateBill(r.Context(), cart.Items); err != nil {
		// Cart is left untouched; the user may retry.
		setFlash(w, "error", "Failed to create bill")
		http.Redirect(w, r, "/billing", http.StatusSeeOther)
		return
	}

	if err := h.store.ClearCart(claims.UserID); err != nil {
		log.Printf("clear cart for operator %d: %v", claims.UserID, err)
	}
	setFlash(w, "success", "Bill created successfully")
	http.Redirect(w, r, "/bills", http.StatusSeeOther)
}

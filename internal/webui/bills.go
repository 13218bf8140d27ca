package webui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"medimanager/m/domain"
)

type billsPage struct {
	page
	Bills []domain.Bill
}

func (h *Handler) billsList(w http.ResponseWriter, r *http.Request) {
	data := billsPage{page: h.page(w, r, "bills")}
	bills, err := h.api.ListBills(r.Context())
	if err != nil {
		data.Flash = &Flash{Kind: "error", Message: "Failed to fetch bills"}
	}
	data.Bills = bills
	h.render(w, http.StatusOK, "bills_list", data)
}

type billDetailPage struct {
	page
	Bill domain.Bill
}

func (h *Handler) billDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		setFlash(w, "error", "Invalid bill id")
		http.Redirect(w, r, "/bills", http.StatusSeeOther)
		return
	}

	bill, err := h.api.GetBill(r.Context(), id)
	if err != nil {
		setFlash(w, "error", "Failed to fetch bill details")
		http.Redirect(w, r, "/bills", http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, "bill_detail", billDetailPage{
		page: h.page(w, r, "bills"),
		Bill: bill,
	})
}

package webui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"medimanager/m/domain"
)

// medicineRow decorates a medicine with the row-level visual flags, computed
// here from whatever list is displayed regardless of which query produced it.
type medicineRow struct {
	domain.Medicine
	IsLowStock     bool
	IsExpiringSoon bool
}

type medicinesPage struct {
	page
	Query  string
	Filter string
	Rows   []medicineRow
}

func (h *Handler) medicinesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	filter := r.URL.Query().Get("filter")

	var (
		medicines []domain.Medicine
		err       error
	)
	switch {
	case query != "":
		medicines, err = h.api.SearchMedicines(ctx, query)
	case filter == "lowstock":
		medicines, err = h.api.LowStock(ctx, lowStockThreshold)
	case filter == "expiring":
		medicines, err = h.api.ExpiringSoon(ctx, expiryWindowDays)
	default:
		medicines, err = h.api.ListMedicines(ctx)
	}

	data := medicinesPage{page: h.page(w, r, "medicines"), Query: query, Filter: filter}
	if err != nil {
		data.Flash = &Flash{Kind: "error", Message: "Failed to fetch medicines"}
		h.render(w, http.StatusOK, "medicines_list", data)
		return
	}

	now := time.Now()
	data.Rows = make([]medicineRow, len(medicines))
	for i, m := range medicines {
		data.Rows[i] = medicineRow{
			Medicine:       m,
			IsLowStock:     m.LowStock(lowStockThreshold),
			IsExpiringSoon: m.ExpiringSoon(now, expiryWindowDays),
		}
	}
	h.render(w, http.StatusOK, "medicines_list", data)
}

type medicineFormPage struct {
	page
	Title  string
	Action string
	Form   medicineForm
	Errors map[string]string
}

func (h *Handler) medicineAddForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "medicine_form", medicineFormPage{
		page:   h.page(w, r, "medicines"),
		Title:  "Add Medicine",
		Action: "/medicines/add",
	})
}

func (h *Handler) medicineAdd(w http.ResponseWriter, r *http.Request) {
	form := medicineFormFromRequest(r)
	data := medicineFormPage{
		page:   h.page(w, r, "medicines"),
		Title:  "Add Medicine",
		Action: "/medicines/add",
		Form:   form,
	}

	medicine, verr := form.validate(time.Now())
	if verr != nil {
		data.Errors = verr.Fields
		h.render(w, http.StatusOK, "medicine_form", data)
		return
	}

	if _, err := h.api.AddMedicine(r.Context(), medicine); err != nil {
		data.Flash = &Flash{Kind: "error", Message: "Failed to save medicine"}
		h.render(w, http.StatusOK, "medicine_form", data)
		return
	}
	setFlash(w, "success", "Medicine added successfully")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) medicineEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		setFlash(w, "error", "Invalid medicine id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// The backend has no single-medicine endpoint, so resolve the record from
	// the full list, the way the original views did.
	medicine, err := h.findMedicine(r, id)
	if err != nil {
		setFlash(w, "error", "Failed to fetch medicine")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, "medicine_form", medicineFormPage{
		page:   h.page(w, r, "medicines"),
		Title:  "Edit Medicine",
		Action: "/medicines/edit/" + strconv.FormatInt(id, 10),
		Form:   medicineFormFromMedicine(medicine),
	})
}

func (h *Handler) medicineEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		setFlash(w, "error", "Invalid medicine id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := medicineFormFromRequest(r)
	data := medicineFormPage{
		page:   h.page(w, r, "medicines"),
		Title:  "Edit Medicine",
		Action: "/medicines/edit/" + strconv.FormatInt(id, 10),
		Form:   form,
	}

	medicine, verr := form.validate(time.Now())
	if verr != nil {
		data.Errors = verr.Fields
		h.render(w, http.StatusOK, "medicine_form", data)
		return
	}

	if _, err := h.api.UpdateMedicine(r.Context(), id, medicine); err != nil {
		data.Flash = &Flash{Kind: "error", Message: "Failed to save medicine"}
		h.render(w, http.StatusOK, "medicine_form", data)
		return
	}
	setFlash(w, "success", "Medicine updated successfully")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) medicineDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		setFlash(w, "error", "Invalid medicine id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := h.api.DeleteMedicine(r.Context(), id); err != nil {
		setFlash(w, "error", "Failed to delete medicine")
	} else {
		setFlash(w, "success", "Medicine deleted successfully")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) findMedicine(r *http.Request, id int64) (domain.Medicine, error) {
	medicines, err := h.api.ListMedicines(r.Context())
	if err != nil {
		return domain.Medicine{}, err
	}
	for _, m := range medicines {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Medicine{}, &domain.ValidationError{Message: "medicine not found"}
}

package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LabelForm struct {
	ID    string `validate:"omitempty,uuid4"`
	Name  string `validate:"required,min=2,max=100"`
	Slug  string `validate:"omitempty,max=100"`
	Color string `validate:"omitempty,hexcolor"`
}

func (h *AdminHandler) GetLabels(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	labels, total, err := h.labelRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetLabels: gagal mengambil daftar label: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar label."})
		return
	}

	h.listPage(w, r, labels, total, page, limit)
}

func (h *AdminHandler) CreateLabelPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateLabelPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Kesalahan parsing form.")
		return
	}

	form := LabelForm{
		Name:  r.PostFormValue("name"),
		Slug:  r.PostFormValue("slug"),
		Color: r.PostFormValue("color"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if form.Color == "" {
		form.Color = "#000000"
	}

	newLabel := &models.Label{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		Color:     form.Color,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.labelRepo.Create(r.Context(), newLabel); err != nil {
		log.Printf("CreateLabelPost: gagal membuat label: %v", err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Gagal menambahkan label.")
		return
	}

	h.redirectWithToast(w, r, "/admin/labels", "success", "Label berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateLabelPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	labelID := vars["id"]

	label, err := h.labelRepo.GetByID(r.Context(), labelID)
	if err != nil || label == nil {
		log.Printf("UpdateLabelPut: label %s tidak ditemukan: %v", labelID, err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Label tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateLabelPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Kesalahan parsing form.")
		return
	}

	form := LabelForm{
		ID:    labelID,
		Name:  r.PostFormValue("name"),
		Slug:  r.PostFormValue("slug"),
		Color: r.PostFormValue("color"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if label.Name != form.Name && form.Slug == "" {
		label.Slug = ""
	} else if form.Slug != "" {
		label.Slug = form.Slug
	}

	label.Name = form.Name
	if form.Color != "" {
		label.Color = form.Color
	}
	label.IsActive = r.PostFormValue("is_active") != "false"
	label.UpdatedAt = time.Now()

	if err := h.labelRepo.Update(r.Context(), label); err != nil {
		log.Printf("UpdateLabelPut: gagal memperbarui label %s: %v", labelID, err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Gagal memperbarui label.")
		return
	}

	h.redirectWithToast(w, r, "/admin/labels", "success", "Label berhasil diperbarui.")
}

func (h *AdminHandler) DeleteLabelDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	labelID := vars["id"]

	label, err := h.labelRepo.GetByID(r.Context(), labelID)
	if err != nil || label == nil {
		log.Printf("DeleteLabelDelete: label %s tidak ditemukan: %v", labelID, err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Label tidak ditemukan.")
		return
	}

	if err := h.labelRepo.Delete(r.Context(), labelID); err != nil {
		log.Printf("DeleteLabelDelete: gagal menghapus label %s: %v", labelID, err)
		h.redirectWithToast(w, r, "/admin/labels", "error", "Gagal menghapus label.")
		return
	}

	h.redirectWithToast(w, r, "/admin/labels", "success", "Label berhasil dihapus.")
}

package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScentFamilyForm struct {
	ID          string `validate:"omitempty,uuid4"`
	Name        string `validate:"required,min=2,max=100"`
	Slug        string `validate:"omitempty,max=100"`
	Description string `validate:"omitempty,max=2000"`
}

func (h *AdminHandler) GetScentFamilys(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	items, total, err := h.scentFamilyRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetScentFamilys: gagal mengambil daftar scent family: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar scent family."})
		return
	}

	h.listPage(w, r, items, total, page, limit)
}

func (h *AdminHandler) CreateScentFamilyPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateScentFamilyPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Kesalahan parsing form.")
		return
	}

	form := ScentFamilyForm{
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newScentFamily := &models.ScentFamily{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		IsActive:    r.PostFormValue("is_active") != "false",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.scentFamilyRepo.Create(r.Context(), newScentFamily); err != nil {
		log.Printf("CreateScentFamilyPost: gagal membuat scent family: %v", err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Gagal menambahkan scent family.")
		return
	}

	h.redirectWithToast(w, r, "/admin/scent-families", "success", "Berhasil menambahkan scent family.")
}

func (h *AdminHandler) UpdateScentFamilyPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	scentFamily, err := h.scentFamilyRepo.GetByID(r.Context(), id)
	if err != nil || scentFamily == nil {
		log.Printf("UpdateScentFamilyPut: scent family %s tidak ditemukan: %v", id, err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Data tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateScentFamilyPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Kesalahan parsing form.")
		return
	}

	form := ScentFamilyForm{
		ID:          id,
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if scentFamily.Name != form.Name && form.Slug == "" {
		scentFamily.Slug = ""
	} else if form.Slug != "" {
		scentFamily.Slug = form.Slug
	}

	scentFamily.Name = form.Name
	scentFamily.Description = form.Description
	scentFamily.IsActive = r.PostFormValue("is_active") != "false"
	scentFamily.UpdatedAt = time.Now()

	if err := h.scentFamilyRepo.Update(r.Context(), scentFamily); err != nil {
		log.Printf("UpdateScentFamilyPut: gagal memperbarui scent family %s: %v", id, err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Gagal memperbarui scent family.")
		return
	}

	h.redirectWithToast(w, r, "/admin/scent-families", "success", "Berhasil memperbarui scent family.")
}

func (h *AdminHandler) DeleteScentFamilyDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	scentFamily, err := h.scentFamilyRepo.GetByID(r.Context(), id)
	if err != nil || scentFamily == nil {
		log.Printf("DeleteScentFamilyDelete: scent family %s tidak ditemukan: %v", id, err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Data tidak ditemukan.")
		return
	}

	if err := h.scentFamilyRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteScentFamilyDelete: gagal menghapus scent family %s: %v", id, err)
		h.redirectWithToast(w, r, "/admin/scent-families", "error", "Gagal menghapus scent family.")
		return
	}

	h.redirectWithToast(w, r, "/admin/scent-families", "success", "Berhasil menghapus scent family.")
}

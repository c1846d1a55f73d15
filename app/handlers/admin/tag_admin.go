package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TagForm struct {
	ID   string `validate:"omitempty,uuid4"`
	Name string `validate:"required,min=2,max=100"`
	Slug string `validate:"omitempty,max=100"`
}

func (h *AdminHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	items, total, err := h.tagRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetTags: gagal mengambil daftar tag: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar tag."})
		return
	}

	h.listPage(w, r, items, total, page, limit)
}

func (h *AdminHandler) CreateTagPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateTagPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Kesalahan parsing form.")
		return
	}

	form := TagForm{
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newTag := &models.Tag{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.tagRepo.Create(r.Context(), newTag); err != nil {
		log.Printf("CreateTagPost: gagal membuat tag: %v", err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Gagal menambahkan tag.")
		return
	}

	h.redirectWithToast(w, r, "/admin/tags", "success", "Berhasil menambahkan tag.")
}

func (h *AdminHandler) UpdateTagPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	tag, err := h.tagRepo.GetByID(r.Context(), id)
	if err != nil || tag == nil {
		log.Printf("UpdateTagPut: tag %s tidak ditemukan: %v", id, err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Data tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateTagPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Kesalahan parsing form.")
		return
	}

	form := TagForm{
		ID:   id,
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if tag.Name != form.Name && form.Slug == "" {
		tag.Slug = ""
	} else if form.Slug != "" {
		tag.Slug = form.Slug
	}

	tag.Name = form.Name
	tag.IsActive = r.PostFormValue("is_active") != "false"
	tag.UpdatedAt = time.Now()

	if err := h.tagRepo.Update(r.Context(), tag); err != nil {
		log.Printf("UpdateTagPut: gagal memperbarui tag %s: %v", id, err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Gagal memperbarui tag.")
		return
	}

	h.redirectWithToast(w, r, "/admin/tags", "success", "Berhasil memperbarui tag.")
}

func (h *AdminHandler) DeleteTagDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	tag, err := h.tagRepo.GetByID(r.Context(), id)
	if err != nil || tag == nil {
		log.Printf("DeleteTagDelete: tag %s tidak ditemukan: %v", id, err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Data tidak ditemukan.")
		return
	}

	if err := h.tagRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteTagDelete: gagal menghapus tag %s: %v", id, err)
		h.redirectWithToast(w, r, "/admin/tags", "error", "Gagal menghapus tag.")
		return
	}

	h.redirectWithToast(w, r, "/admin/tags", "success", "Berhasil menghapus tag.")
}

package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CollectionForm struct {
	ID          string `validate:"omitempty,uuid4"`
	Name        string `validate:"required,min=2,max=100"`
	Slug        string `validate:"omitempty,max=100"`
	Description string `validate:"omitempty,max=2000"`
}

func (h *AdminHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	collections, total, err := h.collectionRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetCollections: gagal mengambil daftar koleksi: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar koleksi."})
		return
	}

	h.listPage(w, r, collections, total, page, limit)
}

func (h *AdminHandler) CreateCollectionPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateCollectionPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Kesalahan parsing form.")
		return
	}

	form := CollectionForm{
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newCollection := &models.Collection{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		IsActive:    r.PostFormValue("is_active") != "false",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.collectionRepo.Create(r.Context(), newCollection); err != nil {
		log.Printf("CreateCollectionPost: gagal membuat koleksi: %v", err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Gagal menambahkan koleksi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/collections", "success", "Koleksi berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateCollectionPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collectionID := vars["id"]

	collection, err := h.collectionRepo.GetByID(r.Context(), collectionID)
	if err != nil || collection == nil {
		log.Printf("UpdateCollectionPut: koleksi %s tidak ditemukan: %v", collectionID, err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Koleksi tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateCollectionPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Kesalahan parsing form.")
		return
	}

	form := CollectionForm{
		ID:          collectionID,
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if collection.Name != form.Name && form.Slug == "" {
		collection.Slug = ""
	} else if form.Slug != "" {
		collection.Slug = form.Slug
	}

	collection.Name = form.Name
	collection.Description = form.Description
	collection.IsActive = r.PostFormValue("is_active") != "false"
	collection.UpdatedAt = time.Now()

	if err := h.collectionRepo.Update(r.Context(), collection); err != nil {
		log.Printf("UpdateCollectionPut: gagal memperbarui koleksi %s: %v", collectionID, err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Gagal memperbarui koleksi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/collections", "success", "Koleksi berhasil diperbarui.")
}

func (h *AdminHandler) DeleteCollectionDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collectionID := vars["id"]

	collection, err := h.collectionRepo.GetByID(r.Context(), collectionID)
	if err != nil || collection == nil {
		log.Printf("DeleteCollectionDelete: koleksi %s tidak ditemukan: %v", collectionID, err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Koleksi tidak ditemukan.")
		return
	}

	if err := h.collectionRepo.Delete(r.Context(), collectionID); err != nil {
		log.Printf("DeleteCollectionDelete: gagal menghapus koleksi %s: %v", collectionID, err)
		h.redirectWithToast(w, r, "/admin/collections", "error", "Gagal menghapus koleksi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/collections", "success", "Koleksi berhasil dihapus.")
}

package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BrandForm struct {
	ID      string `validate:"omitempty,uuid4"`
	Name    string `validate:"required,min=2,max=100"`
	Slug    string `validate:"omitempty,max=100"`
	LogoURL string `validate:"omitempty,url,max=255"`
}

func (h *AdminHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	brands, total, err := h.brandRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetBrands: gagal mengambil daftar brand: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar brand."})
		return
	}

	h.listPage(w, r, brands, total, page, limit)
}

func (h *AdminHandler) CreateBrandPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateBrandPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Kesalahan parsing form.")
		return
	}

	form := BrandForm{
		Name:    r.PostFormValue("name"),
		Slug:    r.PostFormValue("slug"),
		LogoURL: r.PostFormValue("logo_url"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newBrand := &models.Brand{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		LogoURL:   form.LogoURL,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.brandRepo.Create(r.Context(), newBrand); err != nil {
		log.Printf("CreateBrandPost: gagal membuat brand: %v", err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Gagal menambahkan brand.")
		return
	}

	h.redirectWithToast(w, r, "/admin/brands", "success", "Brand berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateBrandPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	brandID := vars["id"]

	brand, err := h.brandRepo.GetByID(r.Context(), brandID)
	if err != nil || brand == nil {
		log.Printf("UpdateBrandPut: brand %s tidak ditemukan: %v", brandID, err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Brand tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateBrandPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Kesalahan parsing form.")
		return
	}

	form := BrandForm{
		ID:      brandID,
		Name:    r.PostFormValue("name"),
		Slug:    r.PostFormValue("slug"),
		LogoURL: r.PostFormValue("logo_url"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if brand.Name != form.Name && form.Slug == "" {
		brand.Slug = ""
	} else if form.Slug != "" {
		brand.Slug = form.Slug
	}

	brand.Name = form.Name
	brand.LogoURL = form.LogoURL
	brand.IsActive = r.PostFormValue("is_active") != "false"
	brand.UpdatedAt = time.Now()

	if err := h.brandRepo.Update(r.Context(), brand); err != nil {
		log.Printf("UpdateBrandPut: gagal memperbarui brand %s: %v", brandID, err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Gagal memperbarui brand.")
		return
	}

	h.redirectWithToast(w, r, "/admin/brands", "success", "Brand berhasil diperbarui.")
}

func (h *AdminHandler) DeleteBrandDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	brandID := vars["id"]

	brand, err := h.brandRepo.GetByID(r.Context(), brandID)
	if err != nil || brand == nil {
		log.Printf("DeleteBrandDelete: brand %s tidak ditemukan: %v", brandID, err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Brand tidak ditemukan.")
		return
	}

	if err := h.brandRepo.Delete(r.Context(), brandID); err != nil {
		log.Printf("DeleteBrandDelete: gagal menghapus brand %s: %v", brandID, err)
		h.redirectWithToast(w, r, "/admin/brands", "error", "Gagal menghapus brand.")
		return
	}

	h.redirectWithToast(w, r, "/admin/brands", "success", "Brand berhasil dihapus.")
}

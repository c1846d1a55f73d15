package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CarouselForm struct {
	ID       string `validate:"omitempty,uuid4"`
	Title    string `validate:"required,min=2,max=150"`
	ImageURL string `validate:"required,url,max=255"`
	LinkURL  string `validate:"omitempty,url,max=255"`
}

func (h *AdminHandler) GetCarousels(w http.ResponseWriter, r *http.Request) {
	carousels, err := h.carouselRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetCarousels: gagal mengambil daftar carousel: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar carousel."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"data":   carousels,
		"toasts": h.flash.Pop(w, r),
	})
}

func (h *AdminHandler) carouselFromForm(r *http.Request) (*models.Carousel, CarouselForm) {
	form := CarouselForm{
		Title:    r.PostFormValue("title"),
		ImageURL: r.PostFormValue("image_url"),
		LinkURL:  r.PostFormValue("link_url"),
	}

	carousel := &models.Carousel{
		Title:    form.Title,
		ImageURL: form.ImageURL,
		LinkURL:  form.LinkURL,
		IsActive: r.PostFormValue("is_active") != "false",
	}
	if position := parseOptionalInt(r.PostFormValue("position")); position != nil {
		carousel.Position = *position
	}
	if start, ok := parseDateTime(r.PostFormValue("start_date")); ok {
		carousel.StartDate = &start
	}
	if end, ok := parseDateTime(r.PostFormValue("end_date")); ok {
		carousel.EndDate = &end
	}
	return carousel, form
}

func (h *AdminHandler) CreateCarouselPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateCarouselPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Kesalahan parsing form.")
		return
	}

	carousel, form := h.carouselFromForm(r)
	if !h.validateForm(w, &form) {
		return
	}

	carousel.ID = uuid.New().String()
	carousel.CreatedAt = time.Now()
	carousel.UpdatedAt = time.Now()

	if err := h.carouselRepo.Create(r.Context(), carousel); err != nil {
		log.Printf("CreateCarouselPost: gagal membuat carousel: %v", err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Gagal menambahkan carousel.")
		return
	}

	h.redirectWithToast(w, r, "/admin/carousels", "success", "Carousel berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateCarouselPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carouselID := vars["id"]

	existing, err := h.carouselRepo.GetByID(r.Context(), carouselID)
	if err != nil || existing == nil {
		log.Printf("UpdateCarouselPut: carousel %s tidak ditemukan: %v", carouselID, err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Carousel tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateCarouselPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Kesalahan parsing form.")
		return
	}

	carousel, form := h.carouselFromForm(r)
	form.ID = carouselID
	if !h.validateForm(w, &form) {
		return
	}

	carousel.ID = existing.ID
	carousel.CreatedAt = existing.CreatedAt
	carousel.UpdatedAt = time.Now()

	if err := h.carouselRepo.Update(r.Context(), carousel); err != nil {
		log.Printf("UpdateCarouselPut: gagal memperbarui carousel %s: %v", carouselID, err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Gagal memperbarui carousel.")
		return
	}

	h.redirectWithToast(w, r, "/admin/carousels", "success", "Carousel berhasil diperbarui.")
}

func (h *AdminHandler) DeleteCarouselDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carouselID := vars["id"]

	carousel, err := h.carouselRepo.GetByID(r.Context(), carouselID)
	if err != nil || carousel == nil {
		log.Printf("DeleteCarouselDelete: carousel %s tidak ditemukan: %v", carouselID, err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Carousel tidak ditemukan.")
		return
	}

	if err := h.carouselRepo.Delete(r.Context(), carouselID); err != nil {
		log.Printf("DeleteCarouselDelete: gagal menghapus carousel %s: %v", carouselID, err)
		h.redirectWithToast(w, r, "/admin/carousels", "error", "Gagal menghapus carousel.")
		return
	}

	h.redirectWithToast(w, r, "/admin/carousels", "success", "Carousel berhasil dihapus.")
}

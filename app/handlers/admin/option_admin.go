package admin

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OptionForm struct {
	ID   string `validate:"omitempty,uuid4"`
	Name string `validate:"required,min=2,max=100"`
	Slug string `validate:"omitempty,max=100"`
}

func (h *AdminHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	options, total, err := h.optionRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetOptions: gagal mengambil daftar opsi: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar opsi."})
		return
	}

	h.listPage(w, r, options, total, page, limit)
}

func (h *AdminHandler) CreateOptionPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateOptionPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Kesalahan parsing form.")
		return
	}

	form := OptionForm{
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newOption := &models.Option{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.optionRepo.Create(r.Context(), newOption); err != nil {
		log.Printf("CreateOptionPost: gagal membuat opsi: %v", err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Gagal menambahkan opsi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/options", "success", "Opsi berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateOptionPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionID := vars["id"]

	option, err := h.optionRepo.GetByID(r.Context(), optionID)
	if err != nil || option == nil {
		log.Printf("UpdateOptionPut: opsi %s tidak ditemukan: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Opsi tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateOptionPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Kesalahan parsing form.")
		return
	}

	form := OptionForm{
		ID:   optionID,
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if option.Name != form.Name && form.Slug == "" {
		option.Slug = ""
	} else if form.Slug != "" {
		option.Slug = form.Slug
	}

	option.Name = form.Name
	option.IsActive = r.PostFormValue("is_active") != "false"
	option.Values = nil
	option.UpdatedAt = time.Now()

	if err := h.optionRepo.Update(r.Context(), option); err != nil {
		log.Printf("UpdateOptionPut: gagal memperbarui opsi %s: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Gagal memperbarui opsi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/options", "success", "Opsi berhasil diperbarui.")
}

// ReplaceOptionValuesPut menerima daftar value (form berulang: values[]) dan
// mengganti seluruh value milik opsi tersebut.
func (h *AdminHandler) ReplaceOptionValuesPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionID := vars["id"]

	option, err := h.optionRepo.GetByID(r.Context(), optionID)
	if err != nil || option == nil {
		log.Printf("ReplaceOptionValuesPut: opsi %s tidak ditemukan: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Opsi tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ReplaceOptionValuesPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Kesalahan parsing form.")
		return
	}

	rawValues := r.PostForm["values[]"]
	values := make([]models.OptionValue, 0, len(rawValues))
	for i, v := range rawValues {
		if v == "" {
			continue
		}
		values = append(values, models.OptionValue{
			ID:        uuid.New().String(),
			OptionID:  optionID,
			Value:     v,
			Position:  i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}

	if err := h.optionRepo.ReplaceValues(r.Context(), optionID, values); err != nil {
		log.Printf("ReplaceOptionValuesPut: gagal mengganti value opsi %s: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Gagal menyimpan value opsi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/options", "success", "Value opsi berhasil disimpan ("+strconv.Itoa(len(values))+" value).")
}

func (h *AdminHandler) DeleteOptionDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionID := vars["id"]

	option, err := h.optionRepo.GetByID(r.Context(), optionID)
	if err != nil || option == nil {
		log.Printf("DeleteOptionDelete: opsi %s tidak ditemukan: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Opsi tidak ditemukan.")
		return
	}

	if err := h.optionRepo.Delete(r.Context(), optionID); err != nil {
		log.Printf("DeleteOptionDelete: gagal menghapus opsi %s: %v", optionID, err)
		h.redirectWithToast(w, r, "/admin/options", "error", "Gagal menghapus opsi.")
		return
	}

	h.redirectWithToast(w, r, "/admin/options", "success", "Opsi berhasil dihapus.")
}

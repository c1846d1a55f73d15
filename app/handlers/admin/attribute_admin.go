package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AttributeForm struct {
	ID   string `validate:"omitempty,uuid4"`
	Name string `validate:"required,min=2,max=100"`
	Slug string `validate:"omitempty,max=100"`
}

type AttributeValueForm struct {
	ID    string `validate:"omitempty,uuid4"`
	Value string `validate:"required,min=1,max=100"`
	Slug  string `validate:"omitempty,max=100"`
}

func (h *AdminHandler) GetAttributes(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	attributes, total, err := h.attributeRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetAttributes: gagal mengambil daftar atribut: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar atribut."})
		return
	}

	h.listPage(w, r, attributes, total, page, limit)
}

func (h *AdminHandler) GetAttributeDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attributeID := vars["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil {
		log.Printf("GetAttributeDetail: gagal mengambil atribut %s: %v", attributeID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil atribut."})
		return
	}
	if attribute == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Atribut tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, attribute)
}

func (h *AdminHandler) CreateAttributePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateAttributePost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Kesalahan parsing form.")
		return
	}

	form := AttributeForm{
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	newAttribute := &models.Attribute{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.attributeRepo.Create(r.Context(), newAttribute); err != nil {
		log.Printf("CreateAttributePost: gagal membuat atribut: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal menambahkan atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Atribut berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateAttributePut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attributeID := vars["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil || attribute == nil {
		log.Printf("UpdateAttributePut: atribut %s tidak ditemukan: %v", attributeID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Atribut tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateAttributePut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Kesalahan parsing form.")
		return
	}

	form := AttributeForm{
		ID:   attributeID,
		Name: r.PostFormValue("name"),
		Slug: r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if attribute.Name != form.Name && form.Slug == "" {
		attribute.Slug = ""
	} else if form.Slug != "" {
		attribute.Slug = form.Slug
	}

	attribute.Name = form.Name
	attribute.Values = nil
	attribute.UpdatedAt = time.Now()

	if err := h.attributeRepo.Update(r.Context(), attribute); err != nil {
		log.Printf("UpdateAttributePut: gagal memperbarui atribut %s: %v", attributeID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal memperbarui atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Atribut berhasil diperbarui.")
}

func (h *AdminHandler) DeleteAttributeDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attributeID := vars["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil || attribute == nil {
		log.Printf("DeleteAttributeDelete: atribut %s tidak ditemukan: %v", attributeID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Atribut tidak ditemukan.")
		return
	}

	if err := h.attributeRepo.Delete(r.Context(), attributeID); err != nil {
		log.Printf("DeleteAttributeDelete: gagal menghapus atribut %s: %v", attributeID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal menghapus atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Atribut berhasil dihapus.")
}

func (h *AdminHandler) CreateAttributeValuePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attributeID := vars["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil || attribute == nil {
		log.Printf("CreateAttributeValuePost: atribut %s tidak ditemukan: %v", attributeID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Atribut tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("CreateAttributeValuePost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Kesalahan parsing form.")
		return
	}

	form := AttributeValueForm{
		Value: r.PostFormValue("value"),
		Slug:  r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	position := parseOptionalInt(r.PostFormValue("position"))
	newValue := &models.AttributeValue{
		ID:          uuid.New().String(),
		AttributeID: attributeID,
		Value:       form.Value,
		Slug:        form.Slug,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if position != nil {
		newValue.Position = *position
	}

	if err := h.attributeRepo.CreateValue(r.Context(), newValue); err != nil {
		log.Printf("CreateAttributeValuePost: gagal membuat value atribut: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal menambahkan value atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Value atribut berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateAttributeValuePut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	valueID := vars["valueID"]

	value, err := h.attributeRepo.GetValueByID(r.Context(), valueID)
	if err != nil || value == nil {
		log.Printf("UpdateAttributeValuePut: value %s tidak ditemukan: %v", valueID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Value atribut tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateAttributeValuePut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Kesalahan parsing form.")
		return
	}

	form := AttributeValueForm{
		ID:    valueID,
		Value: r.PostFormValue("value"),
		Slug:  r.PostFormValue("slug"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if value.Value != form.Value && form.Slug == "" {
		value.Slug = ""
	} else if form.Slug != "" {
		value.Slug = form.Slug
	}

	value.Value = form.Value
	if position := parseOptionalInt(r.PostFormValue("position")); position != nil {
		value.Position = *position
	}
	value.UpdatedAt = time.Now()

	if err := h.attributeRepo.UpdateValue(r.Context(), value); err != nil {
		log.Printf("UpdateAttributeValuePut: gagal memperbarui value %s: %v", valueID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal memperbarui value atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Value atribut berhasil diperbarui.")
}

func (h *AdminHandler) DeleteAttributeValueDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	valueID := vars["valueID"]

	value, err := h.attributeRepo.GetValueByID(r.Context(), valueID)
	if err != nil || value == nil {
		log.Printf("DeleteAttributeValueDelete: value %s tidak ditemukan: %v", valueID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Value atribut tidak ditemukan.")
		return
	}

	if err := h.attributeRepo.DeleteValue(r.Context(), valueID); err != nil {
		log.Printf("DeleteAttributeValueDelete: gagal menghapus value %s: %v", valueID, err)
		h.redirectWithToast(w, r, "/admin/attributes", "error", "Gagal menghapus value atribut.")
		return
	}

	h.redirectWithToast(w, r, "/admin/attributes", "success", "Value atribut berhasil dihapus.")
}

package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CustomerForm struct {
	ID        string `validate:"omitempty,uuid4"`
	FirstName string `validate:"required,min=2,max=100"`
	LastName  string `validate:"omitempty,max=100"`
	Email     string `validate:"required,email,max=100"`
	Phone     string `validate:"omitempty,min=8,max=20"`
}

func (h *AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	customers, total, err := h.customerRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetCustomers: gagal mengambil daftar pelanggan: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar pelanggan."})
		return
	}

	h.listPage(w, r, customers, total, page, limit)
}

func (h *AdminHandler) GetCustomerDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["id"]

	customer, err := h.customerRepo.GetByID(r.Context(), customerID)
	if err != nil {
		log.Printf("GetCustomerDetail: gagal mengambil pelanggan %s: %v", customerID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil pelanggan."})
		return
	}
	if customer == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pelanggan tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, customer)
}

func (h *AdminHandler) CreateCustomerPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateCustomerPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Kesalahan parsing form.")
		return
	}

	form := CustomerForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	existing, err := h.customerRepo.GetByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("CreateCustomerPost: gagal memeriksa email: %v", err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Gagal memeriksa email pelanggan.")
		return
	}
	if existing != nil {
		h.redirectWithToast(w, r, "/admin/customers", "error", "Email sudah terdaftar.")
		return
	}

	newCustomer := &models.Customer{
		ID:        uuid.New().String(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.customerRepo.Create(r.Context(), newCustomer); err != nil {
		log.Printf("CreateCustomerPost: gagal membuat pelanggan: %v", err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Gagal menambahkan pelanggan.")
		return
	}

	h.redirectWithToast(w, r, "/admin/customers", "success", "Pelanggan berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateCustomerPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["id"]

	customer, err := h.customerRepo.GetByID(r.Context(), customerID)
	if err != nil || customer == nil {
		log.Printf("UpdateCustomerPut: pelanggan %s tidak ditemukan: %v", customerID, err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Pelanggan tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateCustomerPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Kesalahan parsing form.")
		return
	}

	form := CustomerForm{
		ID:        customerID,
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if form.Email != customer.Email {
		existing, err := h.customerRepo.GetByEmail(r.Context(), form.Email)
		if err != nil {
			log.Printf("UpdateCustomerPut: gagal memeriksa email: %v", err)
			h.redirectWithToast(w, r, "/admin/customers", "error", "Gagal memeriksa email pelanggan.")
			return
		}
		if existing != nil {
			h.redirectWithToast(w, r, "/admin/customers", "error", "Email sudah terdaftar.")
			return
		}
	}

	customer.FirstName = form.FirstName
	customer.LastName = form.LastName
	customer.Email = form.Email
	customer.Phone = form.Phone
	customer.IsActive = r.PostFormValue("is_active") != "false"
	customer.UpdatedAt = time.Now()

	if err := h.customerRepo.Update(r.Context(), customer); err != nil {
		log.Printf("UpdateCustomerPut: gagal memperbarui pelanggan %s: %v", customerID, err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Gagal memperbarui pelanggan.")
		return
	}

	h.redirectWithToast(w, r, "/admin/customers", "success", "Pelanggan berhasil diperbarui.")
}

func (h *AdminHandler) DeleteCustomerDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["id"]

	customer, err := h.customerRepo.GetByID(r.Context(), customerID)
	if err != nil || customer == nil {
		log.Printf("DeleteCustomerDelete: pelanggan %s tidak ditemukan: %v", customerID, err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Pelanggan tidak ditemukan.")
		return
	}

	if err := h.customerRepo.Delete(r.Context(), customerID); err != nil {
		log.Printf("DeleteCustomerDelete: gagal menghapus pelanggan %s: %v", customerID, err)
		h.redirectWithToast(w, r, "/admin/customers", "error", "Gagal menghapus pelanggan.")
		return
	}

	h.redirectWithToast(w, r, "/admin/customers", "success", "Pelanggan berhasil dihapus.")
}

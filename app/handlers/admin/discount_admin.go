package admin

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/repositories"
	"github.com/arunika/go-backoffice/app/utils/format"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type DiscountForm struct {
	ID        string `validate:"omitempty,uuid4"`
	Name      string `validate:"required,min=2,max=100"`
	Code      string `validate:"omitempty,max=50"`
	Type      string `validate:"required,oneof=percentage fixed"`
	Value     string `validate:"required,numeric"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}

func (h *AdminHandler) GetDiscounts(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	discounts, total, err := h.discountRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetDiscounts: gagal mengambil daftar diskon: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar diskon."})
		return
	}

	h.listPage(w, r, discounts, total, page, limit)
}

func (h *AdminHandler) GetDiscountDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	discountID := vars["id"]

	discount, err := h.discountRepo.GetByID(r.Context(), discountID)
	if err != nil {
		log.Printf("GetDiscountDetail: gagal mengambil diskon %s: %v", discountID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil diskon."})
		return
	}
	if discount == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Diskon tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, discount)
}

func (h *AdminHandler) discountFromForm(r *http.Request) (*models.Discount, bool, DiscountForm) {
	form := DiscountForm{
		Name:      r.PostFormValue("name"),
		Code:      r.PostFormValue("code"),
		Type:      r.PostFormValue("type"),
		Value:     r.PostFormValue("value"),
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
	}

	value, err := decimal.NewFromString(form.Value)
	if err != nil {
		return nil, false, form
	}

	startDate, okStart := parseDateTime(form.StartDate)
	endDate, okEnd := parseDateTime(form.EndDate)
	if !okStart || !okEnd {
		return nil, false, form
	}

	discount := &models.Discount{
		Name:              form.Name,
		Code:              form.Code,
		Type:              form.Type,
		Value:             value,
		MinimumPurchase:   parseOptionalDecimal(r.PostFormValue("minimum_purchase")),
		MaximumDiscount:   parseOptionalDecimal(r.PostFormValue("maximum_discount")),
		StartDate:         startDate,
		EndDate:           endDate,
		UsageLimit:        parseOptionalInt(r.PostFormValue("usage_limit")),
		UsageLimitPerUser: parseOptionalInt(r.PostFormValue("usage_limit_per_user")),
		IsActive:          r.PostFormValue("is_active") != "false",
	}
	return discount, true, form
}

func (h *AdminHandler) CreateDiscountPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateDiscountPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Kesalahan parsing form.")
		return
	}

	discount, ok, form := h.discountFromForm(r)
	if !h.validateForm(w, &form) {
		return
	}
	if !ok {
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Nilai atau tanggal diskon tidak valid.")
		return
	}

	discount.ID = uuid.New().String()
	discount.CreatedAt = time.Now()
	discount.UpdatedAt = time.Now()

	if err := h.discountRepo.Create(r.Context(), discount); err != nil {
		log.Printf("CreateDiscountPost: gagal membuat diskon: %v", err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Gagal menambahkan diskon.")
		return
	}

	h.redirectWithToast(w, r, "/admin/discounts", "success", "Diskon "+discount.Code+" berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateDiscountPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	discountID := vars["id"]

	existing, err := h.discountRepo.GetByID(r.Context(), discountID)
	if err != nil || existing == nil {
		log.Printf("UpdateDiscountPut: diskon %s tidak ditemukan: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Diskon tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateDiscountPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Kesalahan parsing form.")
		return
	}

	discount, ok, form := h.discountFromForm(r)
	form.ID = discountID
	if !h.validateForm(w, &form) {
		return
	}
	if !ok {
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Nilai atau tanggal diskon tidak valid.")
		return
	}

	discount.ID = existing.ID
	if discount.Code == "" {
		discount.Code = existing.Code
	}
	discount.UsedCount = existing.UsedCount
	discount.CreatedAt = existing.CreatedAt
	discount.UpdatedAt = time.Now()

	if err := h.discountRepo.Update(r.Context(), discount); err != nil {
		log.Printf("UpdateDiscountPut: gagal memperbarui diskon %s: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Gagal memperbarui diskon.")
		return
	}

	h.redirectWithToast(w, r, "/admin/discounts", "success", "Diskon berhasil diperbarui.")
}

func (h *AdminHandler) DeleteDiscountDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	discountID := vars["id"]

	discount, err := h.discountRepo.GetByID(r.Context(), discountID)
	if err != nil || discount == nil {
		log.Printf("DeleteDiscountDelete: diskon %s tidak ditemukan: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Diskon tidak ditemukan.")
		return
	}

	if err := h.discountRepo.Delete(r.Context(), discountID); err != nil {
		log.Printf("DeleteDiscountDelete: gagal menghapus diskon %s: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Gagal menghapus diskon.")
		return
	}

	h.redirectWithToast(w, r, "/admin/discounts", "success", "Diskon berhasil dihapus.")
}

// DiscountPreview adalah hasil simulasi pemakaian kode diskon terhadap satu
// harga, dipakai admin untuk mengecek potongan sebelum kode dibagikan.
type DiscountPreview struct {
	Code            string `json:"code"`
	Valid           bool   `json:"valid"`
	Price           string `json:"price"`
	Amount          string `json:"amount"`
	Final           string `json:"final"`
	PriceFormatted  string `json:"price_formatted"`
	AmountFormatted string `json:"amount_formatted"`
	FinalFormatted  string `json:"final_formatted"`
}

// PreviewDiscount menghitung potongan kode untuk ?price= tanpa menyentuh
// used_count. Kode kedaluwarsa atau habis kuota menghasilkan valid=false
// dengan potongan nol, bukan error.
func (h *AdminHandler) PreviewDiscount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	price, err := decimal.NewFromString(r.URL.Query().Get("price"))
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Parameter price tidak valid."})
		return
	}

	discount, err := h.discountRepo.GetByCode(r.Context(), code)
	if err != nil {
		log.Printf("PreviewDiscount: gagal mengambil kode %s: %v", code, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil diskon."})
		return
	}
	if discount == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Kode diskon tidak ditemukan."})
		return
	}

	amount := decimal.Zero
	valid := discount.IsValid(time.Now())
	if valid {
		amount = discount.Amount(price)
	}
	final := price.Sub(amount)

	h.render.JSON(w, http.StatusOK, DiscountPreview{
		Code:            discount.Code,
		Valid:           valid,
		Price:           price.String(),
		Amount:          amount.String(),
		Final:           final.String(),
		PriceFormatted:  format.Rupiah(price),
		AmountFormatted: format.Rupiah(amount),
		FinalFormatted:  format.Rupiah(final),
	})
}

// RedeemDiscountPost menaikkan used_count satu kali secara atomik. Dipakai
// saat layanan checkout eksternal mengonfirmasi pemakaian kode.
func (h *AdminHandler) RedeemDiscountPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	discountID := vars["id"]

	discount, err := h.discountRepo.GetByID(r.Context(), discountID)
	if err != nil || discount == nil {
		log.Printf("RedeemDiscountPost: diskon %s tidak ditemukan: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Diskon tidak ditemukan.")
		return
	}

	if !discount.IsValid(time.Now()) {
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Diskon sudah tidak berlaku.")
		return
	}

	if err := h.discountRepo.IncrementUsage(r.Context(), discountID); err != nil {
		if errors.Is(err, repositories.ErrUsageLimitReached) {
			h.redirectWithToast(w, r, "/admin/discounts", "error", "Kuota pemakaian diskon sudah habis.")
			return
		}
		log.Printf("RedeemDiscountPost: gagal menaikkan pemakaian diskon %s: %v", discountID, err)
		h.redirectWithToast(w, r, "/admin/discounts", "error", "Gagal mencatat pemakaian diskon.")
		return
	}

	h.redirectWithToast(w, r, "/admin/discounts", "success", "Pemakaian diskon "+discount.Code+" tercatat.")
}

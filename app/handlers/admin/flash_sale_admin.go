package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/format"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type FlashSaleForm struct {
	ID        string `validate:"omitempty,uuid4"`
	Name      string `validate:"required,min=2,max=100"`
	Slug      string `validate:"omitempty,max=100"`
	Type      string `validate:"required,oneof=percentage fixed"`
	Value     string `validate:"required,numeric"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}

func (h *AdminHandler) GetFlashSales(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	sales, total, err := h.flashSaleRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetFlashSales: gagal mengambil daftar flash sale: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar flash sale."})
		return
	}

	h.listPage(w, r, sales, total, page, limit)
}

func (h *AdminHandler) GetFlashSaleDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID := vars["id"]

	sale, err := h.flashSaleRepo.GetByID(r.Context(), saleID)
	if err != nil {
		log.Printf("GetFlashSaleDetail: gagal mengambil flash sale %s: %v", saleID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil flash sale."})
		return
	}
	if sale == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Flash sale tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, sale)
}

func (h *AdminHandler) flashSaleFromForm(r *http.Request) (*models.FlashSale, bool, FlashSaleForm) {
	form := FlashSaleForm{
		Name:      r.PostFormValue("name"),
		Slug:      r.PostFormValue("slug"),
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

	sale := &models.FlashSale{
		Name:      form.Name,
		Slug:      form.Slug,
		Type:      form.Type,
		Value:     value,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  r.PostFormValue("is_active") != "false",
	}
	return sale, true, form
}

func (h *AdminHandler) CreateFlashSalePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateFlashSalePost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Kesalahan parsing form.")
		return
	}

	sale, ok, form := h.flashSaleFromForm(r)
	if !h.validateForm(w, &form) {
		return
	}
	if !ok {
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Nilai atau tanggal flash sale tidak valid.")
		return
	}

	sale.ID = uuid.New().String()
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = time.Now()

	if err := h.flashSaleRepo.Create(r.Context(), sale); err != nil {
		log.Printf("CreateFlashSalePost: gagal membuat flash sale: %v", err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Gagal menambahkan flash sale.")
		return
	}

	h.redirectWithToast(w, r, "/admin/flash-sales", "success", "Flash sale berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateFlashSalePut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID := vars["id"]

	existing, err := h.flashSaleRepo.GetByID(r.Context(), saleID)
	if err != nil || existing == nil {
		log.Printf("UpdateFlashSalePut: flash sale %s tidak ditemukan: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Flash sale tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateFlashSalePut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Kesalahan parsing form.")
		return
	}

	sale, ok, form := h.flashSaleFromForm(r)
	form.ID = saleID
	if !h.validateForm(w, &form) {
		return
	}
	if !ok {
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Nilai atau tanggal flash sale tidak valid.")
		return
	}

	sale.ID = existing.ID
	if existing.Name == sale.Name && sale.Slug == "" {
		sale.Slug = existing.Slug
	}
	sale.CreatedAt = existing.CreatedAt
	sale.UpdatedAt = time.Now()

	if err := h.flashSaleRepo.Update(r.Context(), sale); err != nil {
		log.Printf("UpdateFlashSalePut: gagal memperbarui flash sale %s: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Gagal memperbarui flash sale.")
		return
	}

	h.redirectWithToast(w, r, "/admin/flash-sales", "success", "Flash sale berhasil diperbarui.")
}

func (h *AdminHandler) DeleteFlashSaleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID := vars["id"]

	sale, err := h.flashSaleRepo.GetByID(r.Context(), saleID)
	if err != nil || sale == nil {
		log.Printf("DeleteFlashSaleDelete: flash sale %s tidak ditemukan: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Flash sale tidak ditemukan.")
		return
	}

	if err := h.flashSaleRepo.Delete(r.Context(), saleID); err != nil {
		log.Printf("DeleteFlashSaleDelete: gagal menghapus flash sale %s: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Gagal menghapus flash sale.")
		return
	}

	h.redirectWithToast(w, r, "/admin/flash-sales", "success", "Flash sale berhasil dihapus.")
}

// ReplaceFlashSaleProductsPut mengganti seluruh produk peserta flash sale.
// Form berulang: product_ids[], lalu override opsional per baris dengan
// indeks sama: override_types[], override_values[], stock_limits[] (string
// kosong berarti ikut setting level sale).
func (h *AdminHandler) ReplaceFlashSaleProductsPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID := vars["id"]

	sale, err := h.flashSaleRepo.GetByID(r.Context(), saleID)
	if err != nil || sale == nil {
		log.Printf("ReplaceFlashSaleProductsPut: flash sale %s tidak ditemukan: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Flash sale tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ReplaceFlashSaleProductsPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Kesalahan parsing form.")
		return
	}

	productIDs := r.PostForm["product_ids[]"]
	overrideTypes := r.PostForm["override_types[]"]
	overrideValues := r.PostForm["override_values[]"]
	stockLimits := r.PostForm["stock_limits[]"]

	known, err := h.productRepo.GetByIDs(r.Context(), productIDs)
	if err != nil {
		log.Printf("ReplaceFlashSaleProductsPut: gagal memeriksa produk: %v", err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Gagal memeriksa produk.")
		return
	}
	if len(known) != len(productIDs) {
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Ada produk yang tidak ditemukan.")
		return
	}

	products := make([]models.FlashSaleProduct, 0, len(productIDs))
	for i, productID := range productIDs {
		entry := models.FlashSaleProduct{
			ID:          uuid.New().String(),
			FlashSaleID: saleID,
			ProductID:   productID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if i < len(overrideTypes) && overrideTypes[i] != "" {
			overrideType := overrideTypes[i]
			entry.Type = &overrideType
		}
		if i < len(overrideValues) {
			entry.Value = parseOptionalDecimal(overrideValues[i])
		}
		if i < len(stockLimits) {
			entry.StockLimit = parseOptionalInt(stockLimits[i])
		}
		products = append(products, entry)
	}

	if err := h.flashSaleRepo.ReplaceProducts(r.Context(), saleID, products); err != nil {
		log.Printf("ReplaceFlashSaleProductsPut: gagal mengganti produk flash sale %s: %v", saleID, err)
		h.redirectWithToast(w, r, "/admin/flash-sales", "error", "Gagal menyimpan produk flash sale.")
		return
	}

	h.redirectWithToast(w, r, "/admin/flash-sales", "success", "Produk flash sale berhasil disimpan.")
}

// FlashSalePreview menampilkan potongan flash sale untuk satu produk,
// dengan override per-produk sudah diterapkan.
type FlashSalePreview struct {
	Sale            string `json:"sale"`
	ProductID       string `json:"product_id"`
	Valid           bool   `json:"valid"`
	Price           string `json:"price"`
	Amount          string `json:"amount"`
	Final           string `json:"final"`
	PriceFormatted  string `json:"price_formatted"`
	AmountFormatted string `json:"amount_formatted"`
	FinalFormatted  string `json:"final_formatted"`
}

// PreviewFlashSaleProduct menghitung harga flash sale sebuah produk peserta.
// Harga diambil dari katalog; ?price= dapat menimpanya untuk simulasi.
func (h *AdminHandler) PreviewFlashSaleProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID := vars["id"]
	productID := vars["productID"]

	sale, err := h.flashSaleRepo.GetByID(r.Context(), saleID)
	if err != nil {
		log.Printf("PreviewFlashSaleProduct: gagal mengambil flash sale %s: %v", saleID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil flash sale."})
		return
	}
	if sale == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Flash sale tidak ditemukan."})
		return
	}

	entry, err := h.flashSaleRepo.GetProduct(r.Context(), saleID, productID)
	if err != nil {
		log.Printf("PreviewFlashSaleProduct: gagal mengambil produk %s: %v", productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil produk flash sale."})
		return
	}
	if entry == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak terdaftar di flash sale ini."})
		return
	}

	var price decimal.Decimal
	if raw := r.URL.Query().Get("price"); raw != "" {
		price, err = decimal.NewFromString(raw)
		if err != nil {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Parameter price tidak valid."})
			return
		}
	} else {
		product, err := h.productRepo.GetByID(r.Context(), productID)
		if err != nil || product == nil {
			log.Printf("PreviewFlashSaleProduct: produk %s tidak ditemukan di katalog: %v", productID, err)
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak ditemukan."})
			return
		}
		price = product.Price
	}

	amount := decimal.Zero
	valid := sale.IsValid(time.Now())
	if valid {
		amount = sale.Amount(price, entry)
	}
	final := price.Sub(amount)

	h.render.JSON(w, http.StatusOK, FlashSalePreview{
		Sale:            sale.Name,
		ProductID:       productID,
		Valid:           valid,
		Price:           price.String(),
		Amount:          amount.String(),
		Final:           final.String(),
		PriceFormatted:  format.Rupiah(price),
		AmountFormatted: format.Rupiah(amount),
		FinalFormatted:  format.Rupiah(final),
	})
}

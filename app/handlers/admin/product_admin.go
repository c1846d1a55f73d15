package admin

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Katalog produk dikelola layanan lain; di sini hanya daftar, detail, dan
// penataan kategori untuk kebutuhan kurasi.

func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	products, total, err := h.productRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetProducts: gagal mengambil daftar produk: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar produk."})
		return
	}

	h.listPage(w, r, products, total, page, limit)
}

func (h *AdminHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("GetProductDetail: gagal mengambil produk %s: %v", productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil produk."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, product)
}

// ReplaceProductCategoriesPut mengganti seluruh kategori produk (form
// berulang: category_ids[]).
func (h *AdminHandler) ReplaceProductCategoriesPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("ReplaceProductCategoriesPut: produk %s tidak ditemukan: %v", productID, err)
		h.redirectWithToast(w, r, "/admin/products", "error", "Produk tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ReplaceProductCategoriesPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/products", "error", "Kesalahan parsing form.")
		return
	}

	categoryIDs := r.PostForm["category_ids[]"]
	categories, err := h.categoryRepo.GetByIDs(r.Context(), categoryIDs)
	if err != nil {
		log.Printf("ReplaceProductCategoriesPut: gagal mengambil kategori: %v", err)
		h.redirectWithToast(w, r, "/admin/products", "error", "Gagal mengambil kategori.")
		return
	}
	if len(categories) != len(categoryIDs) {
		h.redirectWithToast(w, r, "/admin/products", "error", "Ada kategori yang tidak ditemukan.")
		return
	}

	if err := h.productRepo.ReplaceCategories(r.Context(), productID, categories); err != nil {
		log.Printf("ReplaceProductCategoriesPut: gagal mengganti kategori produk %s: %v", productID, err)
		h.redirectWithToast(w, r, "/admin/products", "error", "Gagal menyimpan kategori produk.")
		return
	}

	h.redirectWithToast(w, r, "/admin/products", "success", "Kategori produk berhasil disimpan.")
}

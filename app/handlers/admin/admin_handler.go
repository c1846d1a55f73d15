package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arunika/go-backoffice/app/helpers"
	"github.com/arunika/go-backoffice/app/repositories"
	"github.com/arunika/go-backoffice/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

const defaultPageSize = 20

type AdminHandler struct {
	render          *render.Render
	validator       *validator.Validate
	flash           sessions.FlashStore
	categoryRepo    repositories.CategoryRepositoryImpl
	brandRepo       repositories.BrandRepositoryImpl
	attributeRepo   repositories.AttributeRepositoryImpl
	collectionRepo  repositories.CollectionRepositoryImpl
	tagRepo         repositories.TagRepositoryImpl
	scentFamilyRepo repositories.ScentFamilyRepositoryImpl
	optionRepo      repositories.OptionRepositoryImpl
	labelRepo       repositories.LabelRepositoryImpl
	carouselRepo    repositories.CarouselRepositoryImpl
	discountRepo    repositories.DiscountRepositoryImpl
	flashSaleRepo   repositories.FlashSaleRepositoryImpl
	customerRepo    repositories.CustomerRepositoryImpl
	userRepo        repositories.UserRepositoryImpl
	roleRepo        repositories.RoleRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	flash sessions.FlashStore,
	categoryRepo repositories.CategoryRepositoryImpl,
	brandRepo repositories.BrandRepositoryImpl,
	attributeRepo repositories.AttributeRepositoryImpl,
	collectionRepo repositories.CollectionRepositoryImpl,
	tagRepo repositories.TagRepositoryImpl,
	scentFamilyRepo repositories.ScentFamilyRepositoryImpl,
	optionRepo repositories.OptionRepositoryImpl,
	labelRepo repositories.LabelRepositoryImpl,
	carouselRepo repositories.CarouselRepositoryImpl,
	discountRepo repositories.DiscountRepositoryImpl,
	flashSaleRepo repositories.FlashSaleRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	roleRepo repositories.RoleRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *AdminHandler {
	return &AdminHandler{
		render:          render,
		validator:       validator,
		flash:           flash,
		categoryRepo:    categoryRepo,
		brandRepo:       brandRepo,
		attributeRepo:   attributeRepo,
		collectionRepo:  collectionRepo,
		tagRepo:         tagRepo,
		scentFamilyRepo: scentFamilyRepo,
		optionRepo:      optionRepo,
		labelRepo:       labelRepo,
		carouselRepo:    carouselRepo,
		discountRepo:    discountRepo,
		flashSaleRepo:   flashSaleRepo,
		customerRepo:    customerRepo,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		productRepo:     productRepo,
	}
}

type ListPageData struct {
	Data   interface{}      `json:"data"`
	Total  int64            `json:"total"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
	Toasts []sessions.Toast `json:"toasts,omitempty"`
}

func (h *AdminHandler) listPage(w http.ResponseWriter, r *http.Request, data interface{}, total int64, page, limit int) {
	h.render.JSON(w, http.StatusOK, ListPageData{
		Data:   data,
		Total:  total,
		Page:   page,
		Limit:  limit,
		Toasts: h.flash.Pop(w, r),
	})
}

// paginationParams membaca filter daftar: ?q= untuk pencarian LIKE dan
// ?page= untuk halaman (mulai dari 1).
func paginationParams(r *http.Request) (keyword string, page, limit, offset int) {
	keyword = r.URL.Query().Get("q")
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit = defaultPageSize
	offset = (page - 1) * limit
	return keyword, page, limit, offset
}

func (h *AdminHandler) redirectWithToast(w http.ResponseWriter, r *http.Request, target, status, message string) {
	h.flash.Add(w, r, status, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// validateForm menjalankan validator dan, bila gagal, menulis respons 422
// berisi pesan per field. Mengembalikan false saat form tidak valid.
func (h *AdminHandler) validateForm(w http.ResponseWriter, form interface{}) bool {
	if err := h.validator.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(validationErrors),
		})
		return false
	}
	return true
}

var dateTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseOptionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

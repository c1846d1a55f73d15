package routes

import (
	"log"
	"net/http"

	"github.com/arunika/go-backoffice/app/configs"
	"github.com/arunika/go-backoffice/app/handlers/admin"
	"github.com/arunika/go-backoffice/app/middlewares"
	"github.com/arunika/go-backoffice/app/repositories"
	"github.com/arunika/go-backoffice/app/utils/renderer"
	"github.com/arunika/go-backoffice/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// NewRouter merakit seluruh rute admin. Override _method dibungkus di luar
// mux supaya POST dengan _method=PUT sudah berubah method sebelum pencocokan
// rute berjalan.
func NewRouter(db *gorm.DB) http.Handler {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load session keys: %v", err)
	}

	flash := sessions.NewCookieFlashStore(keys.AuthKey, keys.EncKey)

	adminHandler := admin.NewAdminHandler(
		renderer.New(),
		validator.New(),
		flash,
		repositories.NewCategoryRepository(db),
		repositories.NewBrandRepository(db),
		repositories.NewAttributeRepository(db),
		repositories.NewCollectionRepository(db),
		repositories.NewTagRepository(db),
		repositories.NewScentFamilyRepository(db),
		repositories.NewOptionRepository(db),
		repositories.NewLabelRepository(db),
		repositories.NewCarouselRepository(db),
		repositories.NewDiscountRepository(db),
		repositories.NewFlashSaleRepository(db),
		repositories.NewCustomerRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewRoleRepository(db),
		repositories.NewProductRepository(db),
	)

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	csrfMiddleware := csrf.Protect(
		[]byte(configs.LoadENV.CSRFKey),
		csrf.Secure(configs.LoadENV.APP_ENV == "production"),
		csrf.Path("/"),
	)

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfMiddleware)
	adminRouter.Use(middlewares.CSRFTokenHeaderMiddleware)

	adminRouter.HandleFunc("/categories", adminHandler.GetCategories).Methods("GET")
	adminRouter.HandleFunc("/categories/tree", adminHandler.GetCategoryTree).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.CreateCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/breadcrumb", adminHandler.GetCategoryBreadcrumb).Methods("GET")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.UpdateCategoryPut).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategoryDelete).Methods("DELETE")
	adminRouter.HandleFunc("/categories/{id}/restore", adminHandler.RestoreCategoryPost).Methods("POST")

	adminRouter.HandleFunc("/brands", adminHandler.GetBrands).Methods("GET")
	adminRouter.HandleFunc("/brands", adminHandler.CreateBrandPost).Methods("POST")
	adminRouter.HandleFunc("/brands/{id}", adminHandler.UpdateBrandPut).Methods("PUT")
	adminRouter.HandleFunc("/brands/{id}", adminHandler.DeleteBrandDelete).Methods("DELETE")

	adminRouter.HandleFunc("/collections", adminHandler.GetCollections).Methods("GET")
	adminRouter.HandleFunc("/collections", adminHandler.CreateCollectionPost).Methods("POST")
	adminRouter.HandleFunc("/collections/{id}", adminHandler.UpdateCollectionPut).Methods("PUT")
	adminRouter.HandleFunc("/collections/{id}", adminHandler.DeleteCollectionDelete).Methods("DELETE")

	adminRouter.HandleFunc("/tags", adminHandler.GetTags).Methods("GET")
	adminRouter.HandleFunc("/tags", adminHandler.CreateTagPost).Methods("POST")
	adminRouter.HandleFunc("/tags/{id}", adminHandler.UpdateTagPut).Methods("PUT")
	adminRouter.HandleFunc("/tags/{id}", adminHandler.DeleteTagDelete).Methods("DELETE")

	adminRouter.HandleFunc("/scent-families", adminHandler.GetScentFamilys).Methods("GET")
	adminRouter.HandleFunc("/scent-families", adminHandler.CreateScentFamilyPost).Methods("POST")
	adminRouter.HandleFunc("/scent-families/{id}", adminHandler.UpdateScentFamilyPut).Methods("PUT")
	adminRouter.HandleFunc("/scent-families/{id}", adminHandler.DeleteScentFamilyDelete).Methods("DELETE")

	adminRouter.HandleFunc("/labels", adminHandler.GetLabels).Methods("GET")
	adminRouter.HandleFunc("/labels", adminHandler.CreateLabelPost).Methods("POST")
	adminRouter.HandleFunc("/labels/{id}", adminHandler.UpdateLabelPut).Methods("PUT")
	adminRouter.HandleFunc("/labels/{id}", adminHandler.DeleteLabelDelete).Methods("DELETE")

	adminRouter.HandleFunc("/options", adminHandler.GetOptions).Methods("GET")
	adminRouter.HandleFunc("/options", adminHandler.CreateOptionPost).Methods("POST")
	adminRouter.HandleFunc("/options/{id}", adminHandler.UpdateOptionPut).Methods("PUT")
	adminRouter.HandleFunc("/options/{id}/values", adminHandler.ReplaceOptionValuesPut).Methods("PUT")
	adminRouter.HandleFunc("/options/{id}", adminHandler.DeleteOptionDelete).Methods("DELETE")

	adminRouter.HandleFunc("/attributes", adminHandler.GetAttributes).Methods("GET")
	adminRouter.HandleFunc("/attributes", adminHandler.CreateAttributePost).Methods("POST")
	adminRouter.HandleFunc("/attributes/{id}", adminHandler.GetAttributeDetail).Methods("GET")
	adminRouter.HandleFunc("/attributes/{id}", adminHandler.UpdateAttributePut).Methods("PUT")
	adminRouter.HandleFunc("/attributes/{id}", adminHandler.DeleteAttributeDelete).Methods("DELETE")
	adminRouter.HandleFunc("/attributes/{id}/values", adminHandler.CreateAttributeValuePost).Methods("POST")
	adminRouter.HandleFunc("/attributes/{id}/values/{valueID}", adminHandler.UpdateAttributeValuePut).Methods("PUT")
	adminRouter.HandleFunc("/attributes/{id}/values/{valueID}", adminHandler.DeleteAttributeValueDelete).Methods("DELETE")

	adminRouter.HandleFunc("/discounts", adminHandler.GetDiscounts).Methods("GET")
	adminRouter.HandleFunc("/discounts", adminHandler.CreateDiscountPost).Methods("POST")
	adminRouter.HandleFunc("/discounts/preview/{code}", adminHandler.PreviewDiscount).Methods("GET")
	adminRouter.HandleFunc("/discounts/{id}", adminHandler.GetDiscountDetail).Methods("GET")
	adminRouter.HandleFunc("/discounts/{id}", adminHandler.UpdateDiscountPut).Methods("PUT")
	adminRouter.HandleFunc("/discounts/{id}", adminHandler.DeleteDiscountDelete).Methods("DELETE")
	adminRouter.HandleFunc("/discounts/{id}/redeem", adminHandler.RedeemDiscountPost).Methods("POST")

	adminRouter.HandleFunc("/flash-sales", adminHandler.GetFlashSales).Methods("GET")
	adminRouter.HandleFunc("/flash-sales", adminHandler.CreateFlashSalePost).Methods("POST")
	adminRouter.HandleFunc("/flash-sales/{id}", adminHandler.GetFlashSaleDetail).Methods("GET")
	adminRouter.HandleFunc("/flash-sales/{id}", adminHandler.UpdateFlashSalePut).Methods("PUT")
	adminRouter.HandleFunc("/flash-sales/{id}", adminHandler.DeleteFlashSaleDelete).Methods("DELETE")
	adminRouter.HandleFunc("/flash-sales/{id}/products", adminHandler.ReplaceFlashSaleProductsPut).Methods("PUT")
	adminRouter.HandleFunc("/flash-sales/{id}/products/{productID}/preview", adminHandler.PreviewFlashSaleProduct).Methods("GET")

	adminRouter.HandleFunc("/carousels", adminHandler.GetCarousels).Methods("GET")
	adminRouter.HandleFunc("/carousels", adminHandler.CreateCarouselPost).Methods("POST")
	adminRouter.HandleFunc("/carousels/{id}", adminHandler.UpdateCarouselPut).Methods("PUT")
	adminRouter.HandleFunc("/carousels/{id}", adminHandler.DeleteCarouselDelete).Methods("DELETE")

	adminRouter.HandleFunc("/customers", adminHandler.GetCustomers).Methods("GET")
	adminRouter.HandleFunc("/customers", adminHandler.CreateCustomerPost).Methods("POST")
	adminRouter.HandleFunc("/customers/{id}", adminHandler.GetCustomerDetail).Methods("GET")
	adminRouter.HandleFunc("/customers/{id}", adminHandler.UpdateCustomerPut).Methods("PUT")
	adminRouter.HandleFunc("/customers/{id}", adminHandler.DeleteCustomerDelete).Methods("DELETE")

	adminRouter.HandleFunc("/users", adminHandler.GetUsers).Methods("GET")
	adminRouter.HandleFunc("/users", adminHandler.CreateUserPost).Methods("POST")
	adminRouter.HandleFunc("/users/{id}", adminHandler.GetUserDetail).Methods("GET")
	adminRouter.HandleFunc("/users/{id}", adminHandler.UpdateUserPut).Methods("PUT")
	adminRouter.HandleFunc("/users/{id}/roles", adminHandler.ReplaceUserRolesPut).Methods("PUT")
	adminRouter.HandleFunc("/users/{id}", adminHandler.DeleteUserDelete).Methods("DELETE")

	adminRouter.HandleFunc("/roles", adminHandler.GetRoles).Methods("GET")
	adminRouter.HandleFunc("/roles", adminHandler.CreateRolePost).Methods("POST")
	adminRouter.HandleFunc("/roles/{id}", adminHandler.GetRoleDetail).Methods("GET")
	adminRouter.HandleFunc("/roles/{id}", adminHandler.UpdateRolePut).Methods("PUT")
	adminRouter.HandleFunc("/roles/{id}/permissions", adminHandler.ReplaceRolePermissionsPut).Methods("PUT")
	adminRouter.HandleFunc("/roles/{id}", adminHandler.DeleteRoleDelete).Methods("DELETE")
	adminRouter.HandleFunc("/permissions", adminHandler.GetPermissions).Methods("GET")

	adminRouter.HandleFunc("/products", adminHandler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", adminHandler.GetProductDetail).Methods("GET")
	adminRouter.HandleFunc("/products/{id}/categories", adminHandler.ReplaceProductCategoriesPut).Methods("PUT")

	return middlewares.RequestLogMiddleware(middlewares.MethodOverrideMiddleware(router))
}

package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/arunika/go-backoffice/app/middlewares"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rute PUT-only hanya cocok kalau method sudah berubah sebelum mux
// mencocokkan rute, jadi override harus membungkus router dari luar.
func TestMethodOverrideReachesMethodMatchedRoute(t *testing.T) {
	router := mux.NewRouter()

	var gotMethod, gotName string
	router.HandleFunc("/admin/brands/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotName = r.FormValue("name")
		w.WriteHeader(http.StatusOK)
	}).Methods("PUT")

	handler := middlewares.MethodOverrideMiddleware(router)

	form := url.Values{}
	form.Set("_method", "PUT")
	form.Set("name", "Parfum")

	req := httptest.NewRequest(http.MethodPost, "/admin/brands/b1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "Parfum", gotName)
}

func TestMethodOverrideIgnoresNonPost(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/admin/brands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	handler := middlewares.MethodOverrideMiddleware(router)

	req := httptest.NewRequest(http.MethodGet, "/admin/brands?_method=DELETE", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func newCSRFTestRouter(t *testing.T) http.Handler {
	t.Helper()

	router := mux.NewRouter()

	csrfMiddleware := csrf.Protect(
		[]byte("32-byte-long-auth-key-for-tests!"),
		csrf.Secure(false),
		csrf.Path("/"),
	)

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfMiddleware)
	adminRouter.Use(middlewares.CSRFTokenHeaderMiddleware)

	adminRouter.HandleFunc("/brands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	adminRouter.HandleFunc("/brands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}).Methods("POST")

	return router
}

// Alur klien: GET daftar dulu untuk mengambil token dari header respons,
// lalu kirim mutasi dengan cookie dan X-CSRF-Token hasil GET tersebut.
func TestCSRFTokenRoundTrip(t *testing.T) {
	handler := newCSRFTestRouter(t)

	getReq := httptest.NewRequest(http.MethodGet, "/admin/brands", nil)
	getRec := httptest.NewRecorder()
	handler.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)
	token := getRec.Header().Get("X-CSRF-Token")
	require.NotEmpty(t, token)

	form := url.Values{}
	form.Set("name", "Parfum")

	postReq := httptest.NewRequest(http.MethodPost, "/admin/brands", strings.NewReader(form.Encode()))
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	postReq.Header.Set("X-CSRF-Token", token)
	for _, cookie := range getRec.Result().Cookies() {
		postReq.AddCookie(cookie)
	}

	postRec := httptest.NewRecorder()
	handler.ServeHTTP(postRec, postReq)

	assert.Equal(t, http.StatusSeeOther, postRec.Code)
}

func TestCSRFMissingTokenRejected(t *testing.T) {
	handler := newCSRFTestRouter(t)

	form := url.Values{}
	form.Set("name", "Parfum")

	req := httptest.NewRequest(http.MethodPost, "/admin/brands", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

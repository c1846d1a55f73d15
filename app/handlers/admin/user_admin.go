package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/helpers"
	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserForm struct {
	ID        string `validate:"omitempty,uuid4"`
	FirstName string `validate:"required,min=2,max=100"`
	LastName  string `validate:"omitempty,max=100"`
	Email     string `validate:"required,email,max=100"`
	Phone     string `validate:"omitempty,min=8,max=20"`
	Password  string `validate:"omitempty,min=8"`
}

// userPayload menyembunyikan hash password dari respons JSON.
type userPayload struct {
	ID        string        `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	IsActive  bool          `json:"is_active"`
	Roles     []models.Role `json:"roles"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toUserPayload(u models.User) userPayload {
	return userPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	users, total, err := h.userRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetUsers: gagal mengambil daftar user: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar user."})
		return
	}

	payload := make([]userPayload, 0, len(users))
	for _, u := range users {
		payload = append(payload, toUserPayload(u))
	}

	h.listPage(w, r, payload, total, page, limit)
}

func (h *AdminHandler) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		log.Printf("GetUserDetail: gagal mengambil user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil user."})
		return
	}
	if user == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "User tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, toUserPayload(*user))
}

func (h *AdminHandler) CreateUserPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateUserPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Kesalahan parsing form.")
		return
	}

	form := UserForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Password:  r.PostFormValue("password"),
	}

	if !h.validateForm(w, &form) {
		return
	}
	if form.Password == "" {
		h.redirectWithToast(w, r, "/admin/users", "error", "Password wajib diisi.")
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("CreateUserPost: gagal memeriksa email: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal memeriksa email user.")
		return
	}
	if existing != nil {
		h.redirectWithToast(w, r, "/admin/users", "error", "Email sudah terdaftar.")
		return
	}

	hashedPassword := helpers.HashPassword(form.Password)
	if hashedPassword == "" {
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal memproses password.")
		return
	}

	newUser := &models.User{
		ID:        uuid.New().String(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Password:  hashedPassword,
		IsActive:  r.PostFormValue("is_active") != "false",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.userRepo.Create(r.Context(), newUser); err != nil {
		log.Printf("CreateUserPost: gagal membuat user: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal menambahkan user.")
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "success", "User berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateUserPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("UpdateUserPut: user %s tidak ditemukan: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "User tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateUserPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Kesalahan parsing form.")
		return
	}

	form := UserForm{
		ID:        userID,
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Password:  r.PostFormValue("password"),
	}

	if !h.validateForm(w, &form) {
		return
	}

	if form.Email != user.Email {
		existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
		if err != nil {
			log.Printf("UpdateUserPut: gagal memeriksa email: %v", err)
			h.redirectWithToast(w, r, "/admin/users", "error", "Gagal memeriksa email user.")
			return
		}
		if existing != nil {
			h.redirectWithToast(w, r, "/admin/users", "error", "Email sudah terdaftar.")
			return
		}
	}

	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email
	user.Phone = form.Phone
	user.IsActive = r.PostFormValue("is_active") != "false"
	if form.Password != "" {
		hashedPassword := helpers.HashPassword(form.Password)
		if hashedPassword == "" {
			h.redirectWithToast(w, r, "/admin/users", "error", "Gagal memproses password.")
			return
		}
		user.Password = hashedPassword
	}
	user.Roles = nil
	user.UpdatedAt = time.Now()

	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("UpdateUserPut: gagal memperbarui user %s: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal memperbarui user.")
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "success", "User berhasil diperbarui.")
}

// ReplaceUserRolesPut mengganti seluruh role user (form berulang: role_ids[]).
func (h *AdminHandler) ReplaceUserRolesPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("ReplaceUserRolesPut: user %s tidak ditemukan: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "User tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ReplaceUserRolesPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Kesalahan parsing form.")
		return
	}

	roleIDs := r.PostForm["role_ids[]"]
	roles, err := h.roleRepo.GetByIDs(r.Context(), roleIDs)
	if err != nil {
		log.Printf("ReplaceUserRolesPut: gagal mengambil role: %v", err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal mengambil role.")
		return
	}
	if len(roles) != len(roleIDs) {
		h.redirectWithToast(w, r, "/admin/users", "error", "Ada role yang tidak ditemukan.")
		return
	}

	if err := h.userRepo.ReplaceRoles(r.Context(), userID, roles); err != nil {
		log.Printf("ReplaceUserRolesPut: gagal mengganti role user %s: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal menyimpan role user.")
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "success", "Role user berhasil disimpan.")
}

func (h *AdminHandler) DeleteUserDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("DeleteUserDelete: user %s tidak ditemukan: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "User tidak ditemukan.")
		return
	}

	if err := h.userRepo.Delete(r.Context(), userID); err != nil {
		log.Printf("DeleteUserDelete: gagal menghapus user %s: %v", userID, err)
		h.redirectWithToast(w, r, "/admin/users", "error", "Gagal menghapus user.")
		return
	}

	h.redirectWithToast(w, r, "/admin/users", "success", "User berhasil dihapus.")
}

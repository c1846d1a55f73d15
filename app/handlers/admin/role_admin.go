package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RoleForm struct {
	ID   string `validate:"omitempty,uuid4"`
	Name string `validate:"required,min=2,max=50"`
}

func (h *AdminHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetRoles: gagal mengambil daftar role: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar role."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"data":   roles,
		"toasts": h.flash.Pop(w, r),
	})
}

func (h *AdminHandler) GetRoleDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roleID := vars["id"]

	role, err := h.roleRepo.GetByID(r.Context(), roleID)
	if err != nil {
		log.Printf("GetRoleDetail: gagal mengambil role %s: %v", roleID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil role."})
		return
	}
	if role == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Role tidak ditemukan."})
		return
	}

	h.render.JSON(w, http.StatusOK, role)
}

// GetPermissions mengembalikan seluruh permission, diurutkan per grup, untuk
// form penyusunan role.
func (h *AdminHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.roleRepo.GetAllPermissions(r.Context())
	if err != nil {
		log.Printf("GetPermissions: gagal mengambil daftar permission: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar permission."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"data": permissions})
}

func (h *AdminHandler) CreateRolePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateRolePost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Kesalahan parsing form.")
		return
	}

	form := RoleForm{Name: r.PostFormValue("name")}
	if !h.validateForm(w, &form) {
		return
	}

	existing, err := h.roleRepo.GetByName(r.Context(), form.Name)
	if err != nil {
		log.Printf("CreateRolePost: gagal memeriksa nama role: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal memeriksa nama role.")
		return
	}
	if existing != nil {
		h.redirectWithToast(w, r, "/admin/roles", "error", "Nama role sudah dipakai.")
		return
	}

	newRole := &models.Role{
		ID:        uuid.New().String(),
		Name:      form.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.roleRepo.Create(r.Context(), newRole); err != nil {
		log.Printf("CreateRolePost: gagal membuat role: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal menambahkan role.")
		return
	}

	h.redirectWithToast(w, r, "/admin/roles", "success", "Role berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateRolePut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roleID := vars["id"]

	role, err := h.roleRepo.GetByID(r.Context(), roleID)
	if err != nil || role == nil {
		log.Printf("UpdateRolePut: role %s tidak ditemukan: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Role tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateRolePut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Kesalahan parsing form.")
		return
	}

	form := RoleForm{ID: roleID, Name: r.PostFormValue("name")}
	if !h.validateForm(w, &form) {
		return
	}

	if form.Name != role.Name {
		existing, err := h.roleRepo.GetByName(r.Context(), form.Name)
		if err != nil {
			log.Printf("UpdateRolePut: gagal memeriksa nama role: %v", err)
			h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal memeriksa nama role.")
			return
		}
		if existing != nil {
			h.redirectWithToast(w, r, "/admin/roles", "error", "Nama role sudah dipakai.")
			return
		}
	}

	role.Name = form.Name
	role.Permissions = nil
	role.UpdatedAt = time.Now()

	if err := h.roleRepo.Update(r.Context(), role); err != nil {
		log.Printf("UpdateRolePut: gagal memperbarui role %s: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal memperbarui role.")
		return
	}

	h.redirectWithToast(w, r, "/admin/roles", "success", "Role berhasil diperbarui.")
}

// ReplaceRolePermissionsPut mengganti seluruh permission role (form
// berulang: permission_ids[]).
func (h *AdminHandler) ReplaceRolePermissionsPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roleID := vars["id"]

	role, err := h.roleRepo.GetByID(r.Context(), roleID)
	if err != nil || role == nil {
		log.Printf("ReplaceRolePermissionsPut: role %s tidak ditemukan: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Role tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("ReplaceRolePermissionsPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Kesalahan parsing form.")
		return
	}

	permissionIDs := r.PostForm["permission_ids[]"]
	permissions, err := h.roleRepo.GetPermissionsByIDs(r.Context(), permissionIDs)
	if err != nil {
		log.Printf("ReplaceRolePermissionsPut: gagal mengambil permission: %v", err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal mengambil permission.")
		return
	}
	if len(permissions) != len(permissionIDs) {
		h.redirectWithToast(w, r, "/admin/roles", "error", "Ada permission yang tidak ditemukan.")
		return
	}

	if err := h.roleRepo.ReplacePermissions(r.Context(), roleID, permissions); err != nil {
		log.Printf("ReplaceRolePermissionsPut: gagal mengganti permission role %s: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal menyimpan permission role.")
		return
	}

	h.redirectWithToast(w, r, "/admin/roles", "success", "Permission role berhasil disimpan.")
}

func (h *AdminHandler) DeleteRoleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roleID := vars["id"]

	role, err := h.roleRepo.GetByID(r.Context(), roleID)
	if err != nil || role == nil {
		log.Printf("DeleteRoleDelete: role %s tidak ditemukan: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Role tidak ditemukan.")
		return
	}

	if role.Name == models.RoleSuperAdmin {
		h.redirectWithToast(w, r, "/admin/roles", "error", "Role super admin tidak boleh dihapus.")
		return
	}

	if err := h.roleRepo.Delete(r.Context(), roleID); err != nil {
		log.Printf("DeleteRoleDelete: gagal menghapus role %s: %v", roleID, err)
		h.redirectWithToast(w, r, "/admin/roles", "error", "Gagal menghapus role.")
		return
	}

	h.redirectWithToast(w, r, "/admin/roles", "success", "Role berhasil dihapus.")
}

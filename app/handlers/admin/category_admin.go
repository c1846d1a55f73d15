package admin

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/arunika/go-backoffice/app/models"
	"github.com/arunika/go-backoffice/app/utils/categorytree"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CategoryForm struct {
	ID       string `validate:"omitempty,uuid4"`
	Name     string `validate:"required,min=2,max=100"`
	Slug     string `validate:"omitempty,max=100"`
	ParentID string `validate:"omitempty,uuid4"`
	Position int
	IsActive bool
}

type CategoryListItem struct {
	models.Category
	FullPath string `json:"full_path"`
	Depth    int    `json:"depth"`
}

func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	keyword, page, limit, offset := paginationParams(r)

	categories, total, err := h.categoryRepo.SearchPaginated(r.Context(), keyword, limit, offset)
	if err != nil {
		log.Printf("GetCategories: gagal mengambil daftar kategori: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil daftar kategori."})
		return
	}

	tree, err := h.categoryRepo.GetTree(r.Context())
	if err != nil {
		log.Printf("GetCategories: gagal membangun pohon kategori: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal membangun pohon kategori."})
		return
	}

	items := make([]CategoryListItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryListItem{
			Category: c,
			FullPath: tree.FullPath(c.ID),
			Depth:    tree.Depth(c.ID),
		})
	}

	h.listPage(w, r, items, total, page, limit)
}

type CategoryTreeNode struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Position int                `json:"position"`
	IsActive bool               `json:"is_active"`
	Children []CategoryTreeNode `json:"children"`
}

// GetCategoryTree mengembalikan hierarki kategori aktif secara nested,
// anak-anak urut position lalu nama.
func (h *AdminHandler) GetCategoryTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.categoryRepo.GetTree(r.Context())
	if err != nil {
		log.Printf("GetCategoryTree: gagal membangun pohon kategori: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal membangun pohon kategori."})
		return
	}

	var build func(nodes []categorytree.Node) []CategoryTreeNode
	build = func(nodes []categorytree.Node) []CategoryTreeNode {
		out := make([]CategoryTreeNode, 0, len(nodes))
		for _, n := range nodes {
			if n.Deleted {
				continue
			}
			out = append(out, CategoryTreeNode{
				ID:       n.ID,
				Name:     n.Name,
				Position: n.Position,
				IsActive: n.IsActive,
				Children: build(tree.ActiveChildren(n.ID)),
			})
		}
		return out
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"tree": build(tree.Roots())})
}

// GetCategoryBreadcrumb mengembalikan jejak dari root sampai kategori,
// dipakai layar admin untuk breadcrumb dan pemilihan parent.
func (h *AdminHandler) GetCategoryBreadcrumb(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		log.Printf("GetCategoryBreadcrumb: error mencari kategori %s: %v", categoryID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil kategori."})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Kategori tidak ditemukan."})
		return
	}

	tree, err := h.categoryRepo.GetTree(r.Context())
	if err != nil {
		log.Printf("GetCategoryBreadcrumb: gagal membangun pohon kategori: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal membangun pohon kategori."})
		return
	}

	ancestors := tree.Ancestors(categoryID)
	trail := make([]map[string]string, 0, len(ancestors)+1)
	for _, a := range ancestors {
		trail = append(trail, map[string]string{"id": a.ID, "name": a.Name})
	}
	trail = append(trail, map[string]string{"id": category.ID, "name": category.Name})

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"breadcrumb": trail,
		"full_path":  tree.FullPath(categoryID),
		"depth":      tree.Depth(categoryID),
	})
}

func (h *AdminHandler) CreateCategoryPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateCategoryPost: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Kesalahan parsing form.")
		return
	}

	form := CategoryForm{
		Name:     r.PostFormValue("name"),
		Slug:     r.PostFormValue("slug"),
		ParentID: r.PostFormValue("parent_id"),
		IsActive: r.PostFormValue("is_active") != "false",
	}
	form.Position, _ = strconv.Atoi(r.PostFormValue("position"))

	if !h.validateForm(w, &form) {
		return
	}

	var parentID *string
	if form.ParentID != "" {
		parent, err := h.categoryRepo.GetByID(r.Context(), form.ParentID)
		if err != nil || parent == nil {
			log.Printf("CreateCategoryPost: parent %s tidak ditemukan: %v", form.ParentID, err)
			h.redirectWithToast(w, r, "/admin/categories", "error", "Kategori induk tidak ditemukan.")
			return
		}
		parentID = &parent.ID
	}

	newCategory := &models.Category{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Slug:      form.Slug,
		ParentID:  parentID,
		Position:  form.Position,
		IsActive:  form.IsActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.categoryRepo.Create(r.Context(), newCategory); err != nil {
		log.Printf("CreateCategoryPost: gagal membuat kategori: %v", err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Gagal menambahkan kategori.")
		return
	}

	h.redirectWithToast(w, r, "/admin/categories", "success", "Kategori berhasil ditambahkan.")
}

func (h *AdminHandler) UpdateCategoryPut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("UpdateCategoryPut: kategori %s tidak ditemukan: %v", categoryID, err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Kategori tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("UpdateCategoryPut: kesalahan parsing form: %v", err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Kesalahan parsing form.")
		return
	}

	form := CategoryForm{
		ID:       categoryID,
		Name:     r.PostFormValue("name"),
		Slug:     r.PostFormValue("slug"),
		ParentID: r.PostFormValue("parent_id"),
		IsActive: r.PostFormValue("is_active") != "false",
	}
	form.Position, _ = strconv.Atoi(r.PostFormValue("position"))

	if !h.validateForm(w, &form) {
		return
	}

	// Nama berubah tanpa slug baru berarti slug diturunkan ulang oleh repo.
	if category.Name != form.Name && form.Slug == "" {
		category.Slug = ""
	} else if form.Slug != "" {
		category.Slug = form.Slug
	}

	category.Name = form.Name
	category.Position = form.Position
	category.IsActive = form.IsActive

	if form.ParentID == "" {
		category.ParentID = nil
	} else {
		parent, err := h.categoryRepo.GetByID(r.Context(), form.ParentID)
		if err != nil || parent == nil {
			log.Printf("UpdateCategoryPut: parent %s tidak ditemukan: %v", form.ParentID, err)
			h.redirectWithToast(w, r, "/admin/categories", "error", "Kategori induk tidak ditemukan.")
			return
		}
		category.ParentID = &parent.ID
	}
	category.Parent = nil
	category.UpdatedAt = time.Now()

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("UpdateCategoryPut: gagal memperbarui kategori %s: %v", categoryID, err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Gagal memperbarui kategori.")
		return
	}

	h.redirectWithToast(w, r, "/admin/categories", "success", "Kategori berhasil diperbarui.")
}

func (h *AdminHandler) DeleteCategoryDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("DeleteCategoryDelete: kategori %s tidak ditemukan: %v", categoryID, err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Kategori tidak ditemukan.")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		log.Printf("DeleteCategoryDelete: gagal menghapus kategori %s: %v", categoryID, err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Gagal menghapus kategori.")
		return
	}

	h.redirectWithToast(w, r, "/admin/categories", "success", "Kategori berhasil dihapus.")
}

func (h *AdminHandler) RestoreCategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	if err := h.categoryRepo.Restore(r.Context(), categoryID); err != nil {
		log.Printf("RestoreCategoryPost: gagal memulihkan kategori %s: %v", categoryID, err)
		h.redirectWithToast(w, r, "/admin/categories", "error", "Gagal memulihkan kategori.")
		return
	}

	h.redirectWithToast(w, r, "/admin/categories", "success", "Kategori berhasil dipulihkan.")
}

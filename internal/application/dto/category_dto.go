package dto

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// UpdateCategoryRequest actualización parcial tipada (nil = sin cambio).
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
}

// CategoryResponse respuesta de categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

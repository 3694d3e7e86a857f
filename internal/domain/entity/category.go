package entity

import "time"

// Category representa una categoría de productos (Café, Té, Pastelería...).
// No puede eliminarse mientras tenga productos asociados.
type Category struct {
	ID        string
	Name      string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

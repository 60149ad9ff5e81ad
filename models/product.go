package models

// Product status labels as they appear in the catalog document
const (
	StatusAvailable = "disponible"
	StatusReserved  = "reservado"
	StatusSold      = "vendido"
)

// Statuses is the fixed vocabulary offered by the status selector
var Statuses = []string{StatusAvailable, StatusReserved, StatusSold}

// Product represents a single catalog record.
// Tags follow the keys of the products document (products.json).
type Product struct {
	Code        string   `json:"codigo" yaml:"codigo"`
	Name        string   `json:"nombre" yaml:"nombre"`
	Description string   `json:"descripcion" yaml:"descripcion"`
	Category    string   `json:"categoria" yaml:"categoria"`
	Price       float64  `json:"precio" yaml:"precio"`
	Status      string   `json:"estado" yaml:"estado"`
	Images      []string `json:"fotos" yaml:"fotos"`
}

// CoverImage returns the first image, used as the card thumbnail
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

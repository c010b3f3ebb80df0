package memory

import (
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// ProductRepository catálogo de productos en memoria (solo lectura).
type ProductRepository struct {
	products map[string]entity.Product
	order    []string
}

// NewProductRepository construye el catálogo desde los datos sembrados.
func NewProductRepository() *ProductRepository {
	repo := &ProductRepository{products: make(map[string]entity.Product)}
	for _, p := range seedProducts() {
		repo.products[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

// GetByID devuelve una copia del producto (BOM incluida) o
// domain.ErrProductNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	cp := cloneProduct(p)
	return &cp, nil
}

// List devuelve los productos en el orden del catálogo.
func (r *ProductRepository) List() ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProduct(r.products[id]))
	}
	return out, nil
}

// cloneProduct copia el producto con su BOM para que el caller no pueda mutar
// el catálogo a través del slice compartido.
func cloneProduct(p entity.Product) entity.Product {
	cp := p
	cp.BOM = make([]entity.BOMLine, len(p.BOM))
	copy(cp.BOM, p.BOM)
	return cp
}

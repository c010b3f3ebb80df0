package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]entity.Product, error)
}

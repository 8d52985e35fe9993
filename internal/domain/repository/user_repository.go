package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna su ID generado.
	// Devuelve domain.ErrEmailAlreadyExists si el email ya existe
	// (constraint único de la base de datos como señal autoritativa).
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

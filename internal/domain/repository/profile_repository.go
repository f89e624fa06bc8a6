package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProfileRepository puerto de persistencia para Profile (solo CRUD; los demás
// agregados lo referencian como creador).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	Delete(id string) error
}

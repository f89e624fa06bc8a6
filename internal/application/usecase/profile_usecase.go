package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProfileUseCase casos de uso CRUD de perfiles de operador.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Create crea un perfil. El email es único.
func (uc *ProfileUseCase) Create(in dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	profile := &entity.Profile{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Avatar:    in.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// GetByID obtiene un perfil por ID.
func (uc *ProfileUseCase) GetByID(id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// Update edición parcial de perfil.
func (uc *ProfileUseCase) Update(id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.Avatar != nil {
		profile.Avatar = *in.Avatar
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Delete elimina el perfil.
func (uc *ProfileUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Avatar:    p.Avatar,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type CanvasColorInput struct {
	Name    string
	HexCode string
}

type CanvasColorPatch struct {
	Name    *string
	HexCode *string
}

type ICanvasColorUseCase interface {
	Create(ctx context.Context, in CanvasColorInput) (entities.CanvasColor, error)
	List(ctx context.Context) ([]entities.CanvasColor, error)
	Update(ctx context.Context, id string, patch CanvasColorPatch) (entities.CanvasColor, error)
	Delete(ctx context.Context, id string) error
	Initialize(ctx context.Context) ([]entities.CanvasColor, error)
}

type CanvasColorUseCase struct {
	repo interfaces.ICanvasColorRepository
}

var _ ICanvasColorUseCase = (*CanvasColorUseCase)(nil)

func NewCanvasColorUseCase(repo interfaces.ICanvasColorRepository) *CanvasColorUseCase {
	return &CanvasColorUseCase{repo: repo}
}

func (u *CanvasColorUseCase) Create(ctx context.Context, in CanvasColorInput) (entities.CanvasColor, error) {
	now := time.Now().UTC()
	c := entities.CanvasColor{
		ID:        uuid.NewString(),
		Name:      normalizeColorName(in.Name),
		HexCode:   strings.ToUpper(strings.TrimSpace(in.HexCode)),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validateCanvasColor(c); err != nil {
		return entities.CanvasColor{}, err
	}
	if err := u.ensureNameUnique(ctx, c); err != nil {
		return entities.CanvasColor{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *CanvasColorUseCase) List(ctx context.Context) ([]entities.CanvasColor, error) {
	colors, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Name < colors[j].Name })
	return colors, nil
}

func (u *CanvasColorUseCase) Update(ctx context.Context, id string, patch CanvasColorPatch) (entities.CanvasColor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CanvasColor{}, invalid("id", "must not be empty")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CanvasColor{}, err
	}
	if c.ID == "" {
		return entities.CanvasColor{}, ErrCanvasColorNotFound
	}

	if patch.Name != nil {
		c.Name = normalizeColorName(*patch.Name)
	}
	if patch.HexCode != nil {
		c.HexCode = strings.ToUpper(strings.TrimSpace(*patch.HexCode))
	}
	c.UpdatedAt = time.Now().UTC()

	if err := validateCanvasColor(c); err != nil {
		return entities.CanvasColor{}, err
	}
	if patch.Name != nil {
		if err := u.ensureNameUnique(ctx, c); err != nil {
			return entities.CanvasColor{}, err
		}
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.CanvasColor{}, err
	}
	if updated.ID == "" {
		return entities.CanvasColor{}, ErrCanvasColorNotFound
	}
	return updated, nil
}

func (u *CanvasColorUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id", "must not be empty")
	}
	c, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCanvasColorNotFound
	}
	return nil
}

// Initialize seeds the default palette. Colors that already exist are
// skipped, so calling it twice creates nothing the second time.
func (u *CanvasColorUseCase) Initialize(ctx context.Context) ([]entities.CanvasColor, error) {
	var created []entities.CanvasColor
	for _, def := range entities.DefaultCanvasColors {
		existing, err := u.repo.FindActiveByName(ctx, def.Name)
		if err != nil {
			return created, err
		}
		if existing.ID != "" {
			continue
		}
		c, err := u.Create(ctx, CanvasColorInput{Name: def.Name, HexCode: def.HexCode})
		if err != nil {
			return created, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (u *CanvasColorUseCase) ensureNameUnique(ctx context.Context, c entities.CanvasColor) error {
	existing, err := u.repo.FindActiveByName(ctx, c.Name)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != c.ID {
		return ErrCanvasColorDuplicate
	}
	return nil
}

func normalizeColorName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func validateCanvasColor(c entities.CanvasColor) error {
	if c.Name == "" {
		return invalid("name", "must not be empty")
	}
	if !hexColorPattern.MatchString(c.HexCode) {
		return invalid("hex_code", "must look like #RRGGBB")
	}
	return nil
}

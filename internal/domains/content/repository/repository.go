package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lemon/infras/otel"
	"lemon/infras/postgres"
	"lemon/internal/domains/content/model"
	gDto "lemon/shared/dto"
	gRepo "lemon/shared/repository"
)

// Content reads the display entities. All three tables are written by staff
// tooling, this service only lists them.
type Content interface {
	GetMenuItems(ctx context.Context, params gDto.QueryParams) ([]model.MenuItem, error)
	GetSpecials(ctx context.Context, params gDto.QueryParams) ([]model.Special, error)
	GetTestimonials(ctx context.Context, params gDto.QueryParams) ([]model.Testimonial, error)
}

type repositoryImpl struct {
	menuItems    gRepo.Repository[model.MenuItem]
	specials     gRepo.Repository[model.Special]
	testimonials gRepo.Repository[model.Testimonial]
}

func New(db *postgres.Connection, otel otel.Otel) Content {
	return &repositoryImpl{
		menuItems:    gRepo.NewRepository[model.MenuItem](model.MenuItemEntityName, model.MenuItemTableName, model.FieldID, db, otel),
		specials:     gRepo.NewRepository[model.Special](model.SpecialEntityName, model.SpecialTableName, model.FieldID, db, otel),
		testimonials: gRepo.NewRepository[model.Testimonial](model.TestimonialEntity, model.TestimonialTableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) GetMenuItems(ctx context.Context, params gDto.QueryParams) ([]model.MenuItem, error) {
	return repo.menuItems.GetAll(ctx, params, gDto.FilterGroup{}) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetSpecials(ctx context.Context, params gDto.QueryParams) ([]model.Special, error) {
	return repo.specials.GetAll(ctx, params, gDto.FilterGroup{}) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetTestimonials(ctx context.Context, params gDto.QueryParams) ([]model.Testimonial, error) {
	return repo.testimonials.GetAll(ctx, params, gDto.FilterGroup{}) // nolint:wrapcheck
}

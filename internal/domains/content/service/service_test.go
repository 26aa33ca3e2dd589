package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lemon/config"
	"lemon/infras/otel/mocks"
	contentMocks "lemon/internal/domains/content/mocks"
	"lemon/internal/domains/content/model"
	"lemon/internal/domains/content/model/dto"
	"lemon/internal/domains/content/service"
	"lemon/shared/cache"
	cacheMocks "lemon/shared/cache/mocks"
	"lemon/shared/constant"
	gModel "lemon/shared/model"
)

func sampleMenu() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:    1,
			Price: 12.99,
			Content: gModel.LocalizedText{
				"en": {Name: "Greek Salad", Description: "Feta, olives, tomatoes"},
				"es": {Name: "Ensalada Griega"},
			},
		},
		{
			ID:    2,
			Price: 9.50,
			Content: gModel.LocalizedText{
				"en": {Name: "Bruschetta"},
			},
		},
	}
}

func TestContentService_GetMenu(t *testing.T) {
	t.Run("cache miss resolves content for the locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := contentMocks.NewMockContent(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			GetMenuItems(gomock.Any(), gomock.Any()).
			Return(sampleMenu(), nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.GetMenu(context.Background(), constant.LocaleSpanish)

		assert.NoError(t, err)

		if assert.Len(t, res, 2) {
			assert.Equal(t, "Ensalada Griega", res[0].Name)
			assert.Equal(t, "Feta, olives, tomatoes", res[0].Description)
			assert.Equal(t, "Bruschetta", res[1].Name)
		}
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := contentMocks.NewMockContent(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cached := []dto.MenuItemResponse{{ID: 1, Name: "Greek Salad", Price: 12.99}}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]dto.MenuItemResponse) = cached

				return nil
			})

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.GetMenu(context.Background(), constant.LocaleEnglish)

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := contentMocks.NewMockContent(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			GetMenuItems(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.GetMenu(context.Background(), constant.LocaleEnglish)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestContentService_GetTestimonials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contentMocks.NewMockContent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		GetTestimonials(gomock.Any(), gomock.Any()).
		Return([]model.Testimonial{
			{
				ID:     1,
				Rating: 5,
				Content: gModel.LocalizedText{
					"en": {Name: "Maria", Description: "Best lemon dessert in town."},
				},
			},
			{
				ID:      2,
				Rating:  4,
				Content: gModel.LocalizedText{},
			},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	res, err := svc.GetTestimonials(context.Background(), constant.LocaleEnglish)

	assert.NoError(t, err)

	if assert.Len(t, res, 2) {
		assert.Equal(t, "Maria", res[0].Name)
		assert.Equal(t, "Best lemon dessert in town.", res[0].Text)
		// Entities with no usable name fall back to the fixed literal.
		assert.Equal(t, gModel.FallbackName, res[1].Name)
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lemon/infras/otel/mocks"
	reservationMocks "lemon/internal/domains/reservation/mocks"
	reservationModel "lemon/internal/domains/reservation/model"
	tableMocks "lemon/internal/domains/table/mocks"
	"lemon/internal/domains/table/model"
	"lemon/internal/domains/table/service"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"
	"lemon/shared/failure"
	"lemon/shared/i18n"
	gModel "lemon/shared/model"
)

func floorPlan() []model.Table {
	return []model.Table{
		{
			ID:       1,
			Number:   "T1",
			Capacity: 2,
			Description: gModel.LocalizedText{
				"en": {Description: "Bar seat"},
				"es": {Description: "Asiento de barra"},
			},
		},
		{
			ID:       2,
			Number:   "T2",
			Capacity: 4,
			Description: gModel.LocalizedText{
				"en": {Description: "Window table"},
			},
		},
	}
}

func TestTableService_GetReservableTables(t *testing.T) {
	t.Run("all tables offered without a slot filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorPlan(), nil)

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleSpanish, "", "")

		assert.Equal(t, gDto.ResultTypeSuccess, result.Type)

		if assert.Len(t, result.Data, 2) {
			assert.Equal(t, "Asiento de barra", result.Data[0].Description)
			assert.Equal(t, "Window table", result.Data[1].Description)
		}
	})

	t.Run("slot filter excludes booked tables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorPlan(), nil)

		mockReservationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reservationModel.Reservation{
				{ID: 9, TableID: 2, Status: reservationModel.StatusConfirmed},
			}, nil)

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleEnglish, "2027-02-15", "19:00")

		assert.Equal(t, gDto.ResultTypeSuccess, result.Type)

		if assert.Len(t, result.Data, 1) {
			assert.Equal(t, int64(1), result.Data[0].ID)
		}
	})

	t.Run("no tables is still success with an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Table{}, nil)

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleEnglish, "", "")

		assert.Equal(t, gDto.ResultTypeSuccess, result.Type)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
	})

	t.Run("malformed slot params fall back to the full floor plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorPlan(), nil)

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleEnglish, "not-a-date", "19:00")

		assert.Equal(t, gDto.ResultTypeSuccess, result.Type)
		assert.Len(t, result.Data, 2)
	})

	t.Run("unreachable store becomes a databaseError result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleSpanish, "", "")

		assert.Equal(t, gDto.ResultTypeError, result.Type)
		assert.Equal(t, failure.KeyDatabaseError, result.MessageKey)
		assert.Equal(t, "No pudimos conectar con el sistema de reservas. Inténtalo de nuevo en unos minutos.", result.Message)
		assert.Empty(t, result.Data)
	})

	t.Run("reservation lookup failure becomes a databaseError result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := tableMocks.NewMockTable(ctrl)
		mockReservationRepo := reservationMocks.NewMockReservation(ctrl)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorPlan(), nil)

		mockReservationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := service.New(mockRepo, mockReservationRepo, i18n.New(), mocks.NewOtel())

		result := svc.GetReservableTables(context.Background(), constant.LocaleEnglish, "2027-02-15", "19:00:00")

		assert.Equal(t, gDto.ResultTypeError, result.Type)
		assert.Equal(t, failure.KeyDatabaseError, result.MessageKey)
	})
}

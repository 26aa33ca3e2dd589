package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lemon/config"
	"lemon/infras/jwt"
	jwtMocks "lemon/infras/jwt/mocks"
	"lemon/infras/otel/mocks"
	"lemon/internal/domains/auth/model/dto"
	"lemon/internal/domains/auth/service"
	userMocks "lemon/internal/domains/user/mocks"
	userModel "lemon/internal/domains/user/model"
	gModel "lemon/shared/model"
	"lemon/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Name:     stringPtr("Test User"),
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "user-id-123",
			ModifiedBy: "user-id-123",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser(), nil)

				jwtService.EXPECT().
					GenerateTokenPair("user-id-123", "test@example.com").
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrong-password",
			},
			setupMock: func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser(), nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				user := validUser()
				user.Active = false

				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			tt.setupMock(mockUserRepo, mockJWT)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "password123",
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Email:    "test@example.com",
			Password: "password123",
		})

		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("invalid token"))

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
	})
}

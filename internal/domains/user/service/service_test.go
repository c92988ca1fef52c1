package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eikaiwa/config"
	"eikaiwa/infras/otel/mocks"
	userMocks "eikaiwa/internal/domains/user/mocks"
	"eikaiwa/internal/domains/user/model"
	"eikaiwa/internal/domains/user/model/dto"
	"eikaiwa/internal/domains/user/service"
	cacheMocks "eikaiwa/shared/cache/mocks"
	"eikaiwa/shared/constant"
)

func stringPtr(s string) *string {
	return &s
}

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// Cache writes and invalidations run on fire-and-forget goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "successful create",
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "new@example.com", user.Email)
						assert.Equal(t, constant.RoleUser, user.Level)
						assert.True(t, user.Active)
						assert.NotEqual(t, "password123", user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.CreateUserRequest{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newUserService(ctrl)
			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache := newUserService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", Email: "test@example.com", Level: constant.RoleUser, Active: true}, nil)

		res, err := svc.Get(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "test@example.com", res.Email)
	})

	t.Run("not found when the row is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache := newUserService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "successful profile update",
			req: dto.UpdateProfileRequest{
				FullName:     stringPtr("Hanako Yamada"),
				FullNameKana: stringPtr("ヤマダ ハナコ"),
				Phone:        stringPtr("+819012345678"),
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, model.FieldFullName)
						assert.Contains(t, fields, model.FieldFullNameKana)
						assert.Contains(t, fields, model.FieldPhone)
						assert.NotContains(t, fields, model.FieldLevel)
						assert.NotContains(t, fields, model.FieldIsVerified)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "empty request is rejected",
			req:       dto.UpdateProfileRequest{},
			setupMock: func(repo *userMocks.MockUser) {},
			wantErr:   true,
		},
		{
			name: "unknown user",
			req: dto.UpdateProfileRequest{
				FullName: stringPtr("Hanako Yamada"),
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update failure",
			req: dto.UpdateProfileRequest{
				FullName: stringPtr("Hanako Yamada"),
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newUserService(ctrl)
			tt.setupMock(mockRepo)

			err := svc.UpdateProfile(context.Background(), tt.req, "user-1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _ := newUserService(ctrl)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "user-1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _ := newUserService(ctrl)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), "missing"))
	})
}

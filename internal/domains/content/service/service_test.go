package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eikaiwa/config"
	"eikaiwa/infras/cms"
	cmsMocks "eikaiwa/infras/cms/mocks"
	"eikaiwa/infras/otel/mocks"
	"eikaiwa/internal/domains/content/model"
	"eikaiwa/internal/domains/content/service"
	cacheMocks "eikaiwa/shared/cache/mocks"
)

var (
	aboutPage = model.Page{ID: "pg1", Slug: "about", Title: "About Us", Body: "<p>こんにちは</p>"}
	plans     = []model.Plan{
		{ID: "plan-trial", Name: "Trial Lesson", RegularPrice: 5000, DiscountAmount: 1000},
		{ID: "plan-regular", Name: "Regular Lesson", RegularPrice: 8000},
	}
)

func newContentService(ctrl *gomock.Controller) (service.Content, *cmsMocks.MockClient) {
	mockCMS := cmsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockCMS, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockCMS
}

func expectList[T any](mockCMS *cmsMocks.MockClient, endpoint string, contents []T, err error) {
	mockCMS.EXPECT().
		GetList(gomock.Any(), endpoint, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			if err != nil {
				return err
			}

			list, _ := out.(*cms.ListResponse[T])
			list.Contents = contents
			list.TotalCount = len(contents)

			return nil
		})
}

func TestContentService_GetPage(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "known slug", slug: "about"},
		{name: "unknown slug", slug: "pricing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockCMS := newContentService(ctrl)
			expectList(mockCMS, model.PagesEndpoint, []model.Page{aboutPage}, nil)

			res, err := svc.GetPage(context.Background(), tt.slug)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, aboutPage.Title, res.Title)
			assert.Equal(t, aboutPage.Slug, res.Slug)
		})
	}
}

func TestContentService_GetPlan(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantPrice int64
		wantErr   bool
	}{
		{name: "discounted plan", id: "plan-trial", wantPrice: 4000},
		{name: "full price plan", id: "plan-regular", wantPrice: 8000},
		{name: "unknown plan", id: "plan-unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockCMS := newContentService(ctrl)
			expectList(mockCMS, model.PlansEndpoint, plans, nil)

			plan, err := svc.GetPlan(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, plan.ID)
			assert.Equal(t, tt.wantPrice, plan.FinalPrice())
		})
	}
}

func TestContentService_GetPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCMS := newContentService(ctrl)
	expectList(mockCMS, model.PlansEndpoint, plans, nil)

	res, err := svc.GetPlans(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Plans, 2)
	assert.Equal(t, int64(4000), res.Plans[0].FinalPrice)
}

func TestContentService_CMSFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCMS := newContentService(ctrl)
	expectList(mockCMS, model.NewsEndpoint, []model.News(nil), errors.New("cms down"))

	_, err := svc.GetNews(context.Background())

	assert.Error(t, err)
}

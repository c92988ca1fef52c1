package dto

import (
	"eikaiwa/internal/domains/content/model"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/timezone"
)

type PageResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}

func (r *PageResponse) FromModel(page model.Page) {
	r.ID = page.ID
	r.Slug = page.Slug
	r.Title = page.Title
	r.Body = page.Body
	r.PublishedAt = timezone.Format(page.PublishedAt, constant.DateFormat)
}

type GetPagesResponse struct {
	Pages []PageResponse `json:"pages"`
}

func (r *GetPagesResponse) FromModels(pages []model.Page) {
	r.Pages = make([]PageResponse, len(pages))
	for i, page := range pages {
		r.Pages[i].FromModel(page)
	}
}

type NewsResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}

type GetNewsResponse struct {
	News []NewsResponse `json:"news"`
}

func (r *GetNewsResponse) FromModels(items []model.News) {
	r.News = make([]NewsResponse, len(items))
	for i, item := range items {
		r.News[i] = NewsResponse{
			ID:          item.ID,
			Title:       item.Title,
			Body:        item.Body,
			PublishedAt: timezone.Format(item.PublishedAt, constant.DateFormat),
		}
	}
}

type PlanResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RegularPrice   int64  `json:"regular_price"`
	DiscountAmount int64  `json:"discount_amount"`
	FinalPrice     int64  `json:"final_price"`
}

func (r *PlanResponse) FromModel(plan model.Plan) {
	r.ID = plan.ID
	r.Name = plan.Name
	r.Description = plan.Description
	r.RegularPrice = plan.RegularPrice
	r.DiscountAmount = plan.DiscountAmount
	r.FinalPrice = plan.FinalPrice()
}

type GetPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

func (r *GetPlansResponse) FromModels(plans []model.Plan) {
	r.Plans = make([]PlanResponse, len(plans))
	for i, plan := range plans {
		r.Plans[i].FromModel(plan)
	}
}

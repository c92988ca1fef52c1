package model

import "time"

const (
	EntityName = "content"

	PagesEndpoint = "pages"
	NewsEndpoint  = "news"
	PlansEndpoint = "plans"
)

// Page is a CMS-authored marketing page (Japanese copy, English headings).
type Page struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
}

type News struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Plan is a lesson plan with CMS-managed pricing, in yen.
type Plan struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RegularPrice   int64  `json:"regularPrice"`
	DiscountAmount int64  `json:"discountAmount"`
}

// FinalPrice is the regular price less the discount, clamped at zero.
func (p Plan) FinalPrice() int64 {
	final := p.RegularPrice - p.DiscountAmount
	if final < 0 {
		return 0
	}

	return final
}

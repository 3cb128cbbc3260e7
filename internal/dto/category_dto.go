package dto

// CategoryResponse is a selectable post category
type CategoryResponse struct {
	Value        string `json:"value" example:"tech"`
	Label        string `json:"label" example:"Technology"`
	Color        string `json:"color" example:"bg-blue-100 text-blue-800"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// CategoryStatsResponse is a category with its published post count
type CategoryStatsResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Count int64  `json:"count"`
}

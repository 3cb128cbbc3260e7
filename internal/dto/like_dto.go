package dto

// ToggleLikeResponse is returned by both like toggles
type ToggleLikeResponse struct {
	Success    bool  `json:"success"`
	IsLiked    bool  `json:"isLiked"`
	TotalLikes int64 `json:"totalLikes"`
}

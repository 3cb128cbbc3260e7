package dto

import "github.com/google/uuid"

// UploadImageResponse is returned after an image upload
type UploadImageResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
	FileURL string    `json:"file_url"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImageStatus represents the lifecycle state of an uploaded image
type ImageStatus string

const (
	ImageStatusTemp      ImageStatus = "TEMP"      // uploaded, not yet referenced by a post
	ImageStatusConfirmed ImageStatus = "CONFIRMED" // referenced by a post
)

// Image is an uploaded blog image stored in S3
type Image struct {
	BaseModel
	Status      ImageStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_images_status" json:"status"`
	FileName    string      `gorm:"type:varchar(255);not null" json:"fileName"`
	FileKey     string      `gorm:"type:text;not null" json:"fileKey"`
	FileURL     string      `gorm:"type:text;not null;index:idx_images_file_url" json:"fileUrl"`
	FileSize    int64       `gorm:"not null" json:"fileSize"`
	ContentType string      `gorm:"type:varchar(100);not null" json:"contentType"`
	UploadedBy  uuid.UUID   `gorm:"type:uuid;not null;index:idx_images_uploaded_by" json:"uploadedBy"`
	PostID      *uuid.UUID  `gorm:"type:uuid;index:idx_images_post_id" json:"postId"`
	ExpiresAt   *time.Time  `gorm:"index:idx_images_expires_at" json:"expiresAt"`
}

// TableName specifies the table name for Image
func (Image) TableName() string {
	return "images"
}

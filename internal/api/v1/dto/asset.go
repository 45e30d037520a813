package dto

// CoverUploadRequestDTO asks for a presigned cover-image upload URL.
type CoverUploadRequestDTO struct {
	CourseID string `json:"course_id" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// CoverUploadResponseDTO carries the presigned URL back to the admin UI.
type CoverUploadResponseDTO struct {
	UploadURL   string `json:"upload_url"`
	StoragePath string `json:"storage_path"`
}

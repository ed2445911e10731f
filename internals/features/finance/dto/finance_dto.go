package dto

import "time"

type CreateTransactionRequest struct {
	AcademyID   string     `json:"academyId" validate:"required"`
	Type        string     `json:"type" validate:"required,oneof=income expense"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type UploadDocumentRequest struct {
	AcademyID   string `json:"academyId" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Data        string `json:"data" validate:"required,base64"`
}

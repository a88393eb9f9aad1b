package service

import "github.com/vetipro/quoteapi/internal/domain"

// ContactInput is the step-one payload. Field names follow the quote form
// contract used by the front-end.
type ContactInput struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=8"`
	Company string `json:"company"`
}

// ProductInput is the step-two payload.
type ProductInput struct {
	ProductName string `json:"productName" binding:"required,min=2"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Size        string `json:"size" binding:"required"`
	Description string `json:"description" binding:"required,min=10"`
	Deadline    string `json:"deadline"`
}

// EnterInput carries the optional design handed off by an upstream
// personalization or pack-building flow when routing to the quote page.
type EnterInput struct {
	Design *domain.Design `json:"design,omitempty"`
}

// SubmitInput is the final submission payload; notes are optional and never
// block submission.
type SubmitInput struct {
	AdditionalNotes string `json:"additionalNotes"`
}

// NoteInput sets the basket's personalization note.
type NoteInput struct {
	Note string `json:"note"`
}

// AssembleInput turns the current basket into a pack design.
type AssembleInput struct {
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	SelectedSize string `json:"selectedSize" binding:"required"`
}

// AttachmentUpload is one file from a selection batch.
type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// RejectedFile describes a file excluded from the attachment list, with the
// user-visible reason.
type RejectedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

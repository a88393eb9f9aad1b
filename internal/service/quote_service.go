package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/draft"
	"github.com/vetipro/quoteapi/internal/repository"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// MaxAttachmentSize is the per-file limit for quote attachments.
const MaxAttachmentSize = 5 * 1024 * 1024 // 5MB

var allowedAttachmentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Submitter delivers an assembled quote request downstream. Failures are
// surfaced to the user for manual retry; the service never retries on its
// own.
type Submitter interface {
	Submit(ctx context.Context, draft *domain.QuoteDraft) error
}

type quoteService struct {
	store     draft.Store
	repos     *repository.Repositories
	submitter Submitter
	logger    *zap.Logger
}

// NewQuoteService creates a new quote wizard service.
func NewQuoteService(store draft.Store, repos *repository.Repositories, submitter Submitter, logger *zap.Logger) *quoteService {
	return &quoteService{
		store:     store,
		repos:     repos,
		submitter: submitter,
		logger:    logger,
	}
}

func newDraft() *domain.QuoteDraft {
	return &domain.QuoteDraft{
		Step:    domain.StepContact,
		Product: domain.ProductFields{Quantity: 1},
	}
}

func (s *quoteService) load(sessionID string) *domain.QuoteDraft {
	if d, ok := s.store.Load(sessionID); ok {
		return d
	}
	return newDraft()
}

// Enter handles arrival on the quote page. A design handed off via the
// navigation payload is appended idempotently (never duplicated by design
// number); without a payload the stored draft is returned as-is, which is
// what keeps drafts across refresh and back-navigation.
func (s *quoteService) Enter(sessionID string, design *domain.Design) *domain.QuoteDraft {
	d := s.load(sessionID)

	if design != nil {
		// SUCCESS is terminal; a new design after a completed submission
		// starts a new quote from step one.
		if d.Step == domain.StepSuccess {
			d = newDraft()
		}

		if !d.HasDesign(design.DesignNumber) {
			d.Designs = append(d.Designs, *design)
		}

		// Pack designs pre-populate the product step.
		if design.IsPack() {
			d.Product.ProductName = design.ProductName
			d.Product.Quantity = design.Quantity
			if d.Product.Quantity < 1 {
				d.Product.Quantity = 1
			}
			d.Product.Size = design.SelectedSize
			if len(design.Items) > 0 {
				d.Product.Description = design.PackDescription()
			}
		}
	}

	s.store.Save(sessionID, d)
	return d
}

// Draft returns the current draft. Only a freshly created draft is
// persisted; reads of an existing one do not touch the store.
func (s *quoteService) Draft(sessionID string) *domain.QuoteDraft {
	if d, ok := s.store.Load(sessionID); ok {
		return d
	}
	d := newDraft()
	s.store.Save(sessionID, d)
	return d
}

// AdvanceContact stores the validated contact fields and moves to the
// product step.
func (s *quoteService) AdvanceContact(sessionID string, input ContactInput) (*domain.QuoteDraft, error) {
	d := s.load(sessionID)

	if d.Step != domain.StepContact {
		return nil, &errors.ErrInvalidStateTransition{From: d.Step, To: domain.StepProduct}
	}

	d.Contact = domain.ContactFields{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
	}
	d.Step = domain.StepProduct

	s.store.Save(sessionID, d)
	return d, nil
}

// AdvanceProduct stores the validated product fields and moves to review.
func (s *quoteService) AdvanceProduct(sessionID string, input ProductInput) (*domain.QuoteDraft, error) {
	d := s.load(sessionID)

	if d.Step != domain.StepProduct {
		return nil, &errors.ErrInvalidStateTransition{From: d.Step, To: domain.StepReview}
	}

	d.Product = domain.ProductFields{
		ProductName: input.ProductName,
		Quantity:    input.Quantity,
		Size:        input.Size,
		Description: input.Description,
		Deadline:    input.Deadline,
	}
	d.Step = domain.StepReview

	s.store.Save(sessionID, d)
	return d, nil
}

// Back steps backward unconditionally. Stored field values survive.
func (s *quoteService) Back(sessionID string) *domain.QuoteDraft {
	d := s.load(sessionID)
	d.Step = d.Step.Prev()
	s.store.Save(sessionID, d)
	return d
}

// AddAttachments checks each file of a batch against the size limit and the
// type allow-list. Failing files are rejected individually; valid siblings
// from the same batch are still accepted.
func (s *quoteService) AddAttachments(sessionID string, uploads []AttachmentUpload) ([]domain.Attachment, []RejectedFile) {
	d := s.load(sessionID)

	var accepted []domain.Attachment
	var rejected []RejectedFile

	for _, upload := range uploads {
		if upload.Size > MaxAttachmentSize {
			rejected = append(rejected, RejectedFile{
				Filename: upload.Filename,
				Reason:   fmt.Sprintf("%s dépasse la taille maximale de 5MB", upload.Filename),
			})
			continue
		}
		if !allowedAttachmentTypes[upload.ContentType] {
			rejected = append(rejected, RejectedFile{
				Filename: upload.Filename,
				Reason:   fmt.Sprintf("%s n'est pas un type de fichier autorisé", upload.Filename),
			})
			continue
		}

		attachment := domain.Attachment{
			Filename:    upload.Filename,
			ContentType: upload.ContentType,
			Size:        upload.Size,
			Data:        upload.Data,
		}
		d.Attachments = append(d.Attachments, attachment)
		accepted = append(accepted, attachment)
	}

	s.store.Save(sessionID, d)
	return accepted, rejected
}

// RemoveAttachment deletes a file from the list by position.
func (s *quoteService) RemoveAttachment(sessionID string, index int) error {
	d := s.load(sessionID)

	if index < 0 || index >= len(d.Attachments) {
		return &errors.ErrValidation{Message: "attachment index out of range"}
	}

	d.Attachments = append(d.Attachments[:index], d.Attachments[index+1:]...)
	s.store.Save(sessionID, d)
	return nil
}

// Submit assembles the draft and delivers it. On success the quote is
// archived, the session draft is cleared and the wizard reaches its terminal
// state; on failure the draft is left at review for a fresh user-initiated
// retry.
func (s *quoteService) Submit(ctx context.Context, sessionID string, input SubmitInput) (*domain.QuoteDraft, error) {
	d := s.load(sessionID)

	if !d.Step.CanTransitionTo(domain.StepSubmitting) {
		return nil, &errors.ErrInvalidStateTransition{From: d.Step, To: domain.StepSubmitting}
	}
	if !d.SubmitEnabled() {
		return nil, &errors.ErrValidation{Message: "at least one design with total quantity >= 1 is required"}
	}

	d.AdditionalNotes = input.AdditionalNotes
	d.Step = domain.StepSubmitting

	if err := s.submitter.Submit(ctx, d); err != nil {
		d.Step = domain.StepReview
		s.store.Save(sessionID, d)
		s.logger.Error("Quote submission failed", zap.Error(err))
		return nil, err
	}

	s.archive(ctx, d)

	// Successful submission clears the stored designs; the draft record
	// itself survives so the session sees the terminal state, with zero
	// designs on any later visit.
	d.Designs = nil
	d.Attachments = nil
	d.Step = domain.StepSuccess
	s.store.Save(sessionID, d)

	return d, nil
}

// archive persists the submitted quote. The outbound delivery already
// succeeded at this point, so archive errors are logged, not surfaced.
func (s *quoteService) archive(ctx context.Context, d *domain.QuoteDraft) {
	quote := &domain.QuoteRequest{
		ID:              uuid.New(),
		CustomerName:    d.Contact.Name,
		Email:           d.Contact.Email,
		Phone:           d.Contact.Phone,
		Company:         optional(d.Contact.Company),
		ProductName:     d.Product.ProductName,
		Quantity:        d.Product.Quantity,
		Size:            d.Product.Size,
		Description:     d.Product.Description,
		Deadline:        optional(d.Product.Deadline),
		AdditionalNotes: optional(d.AdditionalNotes),
		DesignCount:     len(d.Designs),
		TotalQuantity:   d.TotalQuantity(),
		AttachmentCount: len(d.Attachments),
	}

	if err := s.repos.QuoteRequest.Create(ctx, quote); err != nil {
		s.logger.Warn("Failed to archive quote request", zap.Error(err))
		return
	}

	designs := make([]*domain.QuoteRequestDesign, 0, len(d.Designs))
	for _, design := range d.Designs {
		itemNames := make([]string, len(design.Items))
		for i, item := range design.Items {
			itemNames[i] = item.Name
		}
		designs = append(designs, &domain.QuoteRequestDesign{
			QuoteRequestID: quote.ID,
			DesignNumber:   design.DesignNumber,
			ProductName:    design.ProductName,
			Quantity:       design.Quantity,
			SelectedSize:   design.SelectedSize,
			ItemNames:      itemNames,
		})
	}
	if err := s.repos.QuoteDesign.CreateBatch(ctx, designs); err != nil {
		s.logger.Warn("Failed to archive quote designs", zap.Error(err))
	}

	event := &domain.QuoteEvent{
		QuoteRequestID: quote.ID,
		EventType:      "quote_submitted",
		EventData: map[string]interface{}{
			"design_count":   quote.DesignCount,
			"total_quantity": quote.TotalQuantity,
			"attachments":    quote.AttachmentCount,
		},
	}
	if err := s.repos.QuoteEvent.Create(ctx, event); err != nil {
		s.logger.Warn("Failed to record quote event", zap.Error(err))
	}
}

// Reset clears the session draft, the return-to-home action from the
// confirmation view.
func (s *quoteService) Reset(sessionID string) {
	s.store.Clear(sessionID)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

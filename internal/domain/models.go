package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PackDesignPrefix marks design numbers produced by the pack builder.
// Upstream personalization flows use their own numbering.
const PackDesignPrefix = "PACK-"

// Product represents an immutable catalog entry.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Image            string   `json:"image,omitempty"`
	Category         string   `json:"category,omitempty"`
	Type             string   `json:"type,omitempty"`
	IsPersonalizable bool     `json:"isPersonalizable,omitempty"`
	AvailableColors  []string `json:"availableColors,omitempty"`
}

// PackItem is a single garment inside a pack.
type PackItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	Price            float64 `json:"price,omitempty"`
	IsPersonalizable bool    `json:"isPersonalizable,omitempty"`
}

// PackConfig is a purchasable bundle derived from the static menu plus the
// item and price tables. Read-only after derivation.
type PackConfig struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	Items        []PackItem   `json:"items"`
	TotalPrice   float64      `json:"totalPrice"`
	Discount     string       `json:"discount,omitempty"`
	Availability Availability `json:"availability"`
}

// DesignItem names a constituent of an assembled pack design.
type DesignItem struct {
	Name string `json:"name"`
}

// Design is a quote line item handed off by personalization or pack-building
// flows. Never mutated after creation; de-duplicated by DesignNumber.
type Design struct {
	DesignNumber string       `json:"designNumber"`
	ProductName  string       `json:"productName"`
	Quantity     int          `json:"quantity"`
	SelectedSize string       `json:"selectedSize"`
	Items        []DesignItem `json:"items,omitempty"`
}

// IsPack reports whether the design was produced by the pack builder.
func (d Design) IsPack() bool {
	return strings.HasPrefix(d.DesignNumber, PackDesignPrefix)
}

// PackDescription renders the pre-populated product description for a pack
// design, listing its constituent items.
func (d Design) PackDescription() string {
	names := make([]string, len(d.Items))
	for i, it := range d.Items {
		names[i] = it.Name
	}
	return fmt.Sprintf("Pack %s comprenant: %s", d.ProductName, strings.Join(names, ", "))
}

// ContactFields is the step-one field subset of the quote form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

// ProductFields is the step-two field subset of the quote form.
type ProductFields struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// Attachment is a file accepted onto the quote draft. Data is held in the
// session store until submission.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// QuoteDraft is the session-scoped draft accumulated across the wizard.
// One writer per session, so no internal locking.
type QuoteDraft struct {
	Step            QuoteStep    `json:"step"`
	Designs         []Design     `json:"designs"`
	Contact         ContactFields `json:"contact"`
	Product         ProductFields `json:"product"`
	AdditionalNotes string       `json:"additionalNotes,omitempty"`
	Attachments     []Attachment `json:"attachments"`
}

// TotalQuantity sums the per-design quantities.
func (d *QuoteDraft) TotalQuantity() int {
	total := 0
	for _, design := range d.Designs {
		total += design.Quantity
	}
	return total
}

// SubmitEnabled reports whether the gating invariant holds: at least one
// design and a total quantity of at least one.
func (d *QuoteDraft) SubmitEnabled() bool {
	return len(d.Designs) > 0 && d.TotalQuantity() >= 1
}

// HasDesign reports whether a design with the given number is already stored.
func (d *QuoteDraft) HasDesign(designNumber string) bool {
	for _, design := range d.Designs {
		if design.DesignNumber == designNumber {
			return true
		}
	}
	return false
}

// Basket holds the pack builder's drop-target contents for one session plus
// the free-text personalization note.
type Basket struct {
	Items []Product `json:"items"`
	Note  string    `json:"note,omitempty"`
}

// TotalPrice sums the basket item prices.
func (b *Basket) TotalPrice() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.Price
	}
	return total
}

// QuoteRequest is an archived, submitted quote.
type QuoteRequest struct {
	ID              uuid.UUID
	CustomerName    string
	Email           string
	Phone           string
	Company         *string
	ProductName     string
	Quantity        int
	Size            string
	Description     string
	Deadline        *string
	AdditionalNotes *string
	DesignCount     int
	TotalQuantity   int
	AttachmentCount int
	CreatedAt       time.Time
}

// QuoteRequestDesign is one archived design line of a submitted quote.
type QuoteRequestDesign struct {
	ID             uuid.UUID
	QuoteRequestID uuid.UUID
	DesignNumber   string
	ProductName    string
	Quantity       int
	SelectedSize   string
	ItemNames      []string
	CreatedAt      time.Time
}

// QuoteEvent represents an audit event for a quote request.
type QuoteEvent struct {
	ID             uuid.UUID
	QuoteRequestID uuid.UUID
	EventType      string
	EventData      map[string]interface{} // JSONB
	CreatedAt      time.Time
}

// APIClient represents an admin API consumer.
type APIClient struct {
	ID         uuid.UUID
	Name       string
	APIKeyHash string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package domain

// Availability represents the stock state of a pack.
type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

// IsValid checks if the availability value is valid.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityLimited, AvailabilityOutOfStock:
		return true
	default:
		return false
	}
}

// QuoteStep represents the state of the quote request wizard.
type QuoteStep string

const (
	StepContact    QuoteStep = "CONTACT"
	StepProduct    QuoteStep = "PRODUCT"
	StepReview     QuoteStep = "REVIEW"
	StepSubmitting QuoteStep = "SUBMITTING"
	StepSuccess    QuoteStep = "SUCCESS"
)

// IsValid checks if the quote step is valid.
func (s QuoteStep) IsValid() bool {
	switch s {
	case StepContact, StepProduct, StepReview, StepSubmitting, StepSuccess:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid. Forward transitions
// out of CONTACT and PRODUCT additionally require the step's field subset to
// validate; that gating lives in the service, this is the shape of the
// machine itself.
func (s QuoteStep) CanTransitionTo(next QuoteStep) bool {
	switch s {
	case StepContact:
		return next == StepProduct
	case StepProduct:
		return next == StepReview || next == StepContact
	case StepReview:
		return next == StepSubmitting || next == StepProduct
	case StepSubmitting:
		return next == StepSuccess || next == StepReview
	case StepSuccess:
		return false // Terminal state
	default:
		return false
	}
}

// Prev returns the unconditional backward step, or the step itself when no
// backward transition exists.
func (s QuoteStep) Prev() QuoteStep {
	switch s {
	case StepProduct:
		return StepContact
	case StepReview:
		return StepProduct
	default:
		return s
	}
}

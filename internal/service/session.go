package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPreconditionFailed means a checkout step was called out of order or without the state it needs.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrInvalidToken means the gateway did not recognise the checkout token.
	ErrInvalidToken = errors.New("invalid checkout token")
)

type CheckoutState string

const (
	StateNew            CheckoutState = "NEW"
	StateInitiated      CheckoutState = "INITIATED"
	StateDetailsFetched CheckoutState = "DETAILS_FETCHED"
	StateAuthorized     CheckoutState = "AUTHORIZED"
	StateFailed         CheckoutState = "FAILED"
)

func (s CheckoutState) IsTerminal() bool {
	return s == StateAuthorized || s == StateFailed
}

// CheckoutSession carries the state of one Express Checkout flow between the
// three gateway calls. The caller owns it and passes it to every step.
type CheckoutSession struct {
	transactionID string

	Token    string
	PayerID  string
	State    CheckoutState
	Customer OrderContext
}

func NewCheckoutSession(transactionID string) (*CheckoutSession, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is not set", ErrPreconditionFailed)
	}
	return &CheckoutSession{
		transactionID: transactionID,
		State:         StateNew,
	}, nil
}

// ResumeCheckoutSession rebuilds a session from the identifiers the shop kept
// between requests (typically the token and PayerID PayPal appends to the return URL).
func ResumeCheckoutSession(transactionID, token, payerID string) (*CheckoutSession, error) {
	s, err := NewCheckoutSession(transactionID)
	if err != nil {
		return nil, err
	}

	s.Token = strings.TrimSpace(token)
	s.PayerID = strings.TrimSpace(payerID)

	switch {
	case s.Token != "" && s.PayerID != "":
		s.State = StateDetailsFetched
	case s.Token != "":
		s.State = StateInitiated
	case s.PayerID != "":
		return nil, fmt.Errorf("%w: payer id given without a token", ErrPreconditionFailed)
	}

	return s, nil
}

func (s *CheckoutSession) TransactionID() string {
	return s.transactionID
}

// Result is the outcome of a gateway call that the gateway may legitimately refuse.
type Result struct {
	Success      bool
	ErrorCode    string
	ErrorMessage string
}

// Message renders a refusal as "(code) message".
func (r Result) Message() string {
	if r.Success {
		return ""
	}
	return fmt.Sprintf("(%s) %s", r.ErrorCode, r.ErrorMessage)
}

type AuthorizationResult = Result

package dto

import (
	"strings"

	"github.com/mark1979smith/farmison/internal/service"
)

const (
	DefaultCurrency     = "GBP"
	maxShippingAddrLine = 4
)

// InitiateCheckout starts a checkout. ReturnURL and CancelURL are pages of the
// calling shop; PayPal sends the buyer back to one of them.
type InitiateCheckout struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency"`
	ReturnURL     string  `json:"return_url" binding:"required,url"`
	CancelURL     string  `json:"cancel_url" binding:"required,url"`
}

func (r *InitiateCheckout) Sanitize() {
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.ReturnURL = strings.TrimSpace(r.ReturnURL)
	r.CancelURL = strings.TrimSpace(r.CancelURL)
	r.Currency = sanitizeCurrency(r.Currency)
}

type InitiateCheckoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type FetchDetails struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Token         string `json:"token" binding:"required"`
}

func (r *FetchDetails) Sanitize() {
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.Token = strings.TrimSpace(r.Token)
}

type CheckoutDetailsResponse struct {
	PayerID     string `json:"payer_id"`
	PayerStatus string `json:"payer_status,omitempty"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CountryCode string `json:"country_code"`
}

func NewCheckoutDetailsResponse(d service.CheckoutDetails) CheckoutDetailsResponse {
	return CheckoutDetailsResponse{
		PayerID:     d.PayerID,
		PayerStatus: d.PayerStatus,
		Email:       d.Email,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		CountryCode: d.CountryCode,
	}
}

// Customer is the billing and shipping data the shop holds for the order.
type Customer struct {
	BillingCity        string   `json:"billing_city"`
	BillingRegion      string   `json:"billing_region"`
	BillingPostalCode  string   `json:"billing_postal_code"`
	BillingCountry     string   `json:"billing_country"`
	ShippingAddress    []string `json:"shipping_address"`
	ShippingCity       string   `json:"shipping_city"`
	ShippingPostalCode string   `json:"shipping_postal_code"`
	ShippingCountry    string   `json:"shipping_country"`
	Email              string   `json:"email"`
	Telephone          string   `json:"telephone"`
	AlternateTelephone string   `json:"alternate_telephone"`
	BinNumber          string   `json:"bin_number"`
	CVVResult          string   `json:"cvv_result"`
}

type AuthorizeCheckout struct {
	TransactionID string   `json:"transaction_id" binding:"required"`
	Token         string   `json:"token" binding:"required"`
	PayerID       string   `json:"payer_id" binding:"required"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	Customer      Customer `json:"customer"`
}

func (r *AuthorizeCheckout) Sanitize() {
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.Token = strings.TrimSpace(r.Token)
	r.PayerID = strings.TrimSpace(r.PayerID)
	r.Currency = sanitizeCurrency(r.Currency)

	r.Customer.Email = strings.TrimSpace(r.Customer.Email)
	r.Customer.BillingCountry = strings.ToUpper(strings.TrimSpace(r.Customer.BillingCountry))
	r.Customer.ShippingCountry = strings.ToUpper(strings.TrimSpace(r.Customer.ShippingCountry))
	if len(r.Customer.ShippingAddress) > maxShippingAddrLine {
		r.Customer.ShippingAddress = r.Customer.ShippingAddress[:maxShippingAddrLine]
	}
}

// ClientInfo is what the request itself says about the buyer's browser.
type ClientInfo struct {
	IPAddress      string
	ForwardedIP    string
	UserAgent      string
	AcceptLanguage string
	SessionID      string
}

func (r *AuthorizeCheckout) ToOrderContext(client ClientInfo) service.OrderContext {
	return service.OrderContext{
		IPAddress:            client.IPAddress,
		ForwardedIP:          client.ForwardedIP,
		BillingCity:          r.Customer.BillingCity,
		BillingRegion:        r.Customer.BillingRegion,
		BillingPostalCode:    r.Customer.BillingPostalCode,
		BillingCountry:       r.Customer.BillingCountry,
		ShippingAddressLines: r.Customer.ShippingAddress,
		ShippingCity:         r.Customer.ShippingCity,
		ShippingPostalCode:   r.Customer.ShippingPostalCode,
		ShippingCountry:      r.Customer.ShippingCountry,
		EmailAddress:         r.Customer.Email,
		Telephone:            r.Customer.Telephone,
		AlternateTelephone:   r.Customer.AlternateTelephone,
		BinNumber:            r.Customer.BinNumber,
		CVVResult:            r.Customer.CVVResult,
		SessionID:            client.SessionID,
		UserAgent:            client.UserAgent,
		AcceptLanguage:       client.AcceptLanguage,
	}
}

type AuthorizeResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

type GatewayError struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func sanitizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}

package service

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/mark1979smith/farmison/internal/nvp"
)

const (
	DefaultCountry = "GB"

	TxnTypePaypal = "paypal"

	mobilePrefix = "07"
)

// OrderContext is what the shop knows about the buyer and the browser at the
// moment of payment.
type OrderContext struct {
	IPAddress   string
	ForwardedIP string

	BillingCity       string
	BillingRegion     string
	BillingPostalCode string
	BillingCountry    string

	ShippingAddressLines []string
	ShippingCity         string
	ShippingPostalCode   string
	ShippingCountry      string

	EmailAddress       string
	Telephone          string
	AlternateTelephone string

	BinNumber string
	CVVResult string

	SessionID      string
	UserAgent      string
	AcceptLanguage string
}

// FraudScoreRequest is the minFraud query for one order.
type FraudScoreRequest struct {
	IPAddress          string
	BillingCity        string
	BillingRegion      string
	BillingPostalCode  string
	BillingCountry     string
	ShippingAddress    string
	ShippingCity       string
	ShippingPostalCode string
	ShippingCountry    string
	EmailDomain        string
	CustomerPhone      string
	EmailMD5           string
	BinNumber          string
	SessionID          string
	UserAgent          string
	AcceptLanguage     string
	TxnID              string
	OrderAmount        float64
	OrderCurrency      string
	TxnType            string
	CVVResult          string
	ForwardedIP        string
}

func NewFraudScoreRequest(oc OrderContext, transactionID string, amount float64, currency, txnType string) FraudScoreRequest {
	return FraudScoreRequest{
		IPAddress:          oc.IPAddress,
		BillingCity:        oc.BillingCity,
		BillingRegion:      oc.BillingRegion,
		BillingPostalCode:  oc.BillingPostalCode,
		BillingCountry:     orDefault(oc.BillingCountry, DefaultCountry),
		ShippingAddress:    joinAddress(oc.ShippingAddressLines),
		ShippingCity:       oc.ShippingCity,
		ShippingPostalCode: oc.ShippingPostalCode,
		ShippingCountry:    orDefault(oc.ShippingCountry, DefaultCountry),
		EmailDomain:        emailDomain(oc.EmailAddress),
		CustomerPhone:      landline(oc.Telephone, oc.AlternateTelephone),
		EmailMD5:           emailMD5(oc.EmailAddress),
		BinNumber:          oc.BinNumber,
		SessionID:          oc.SessionID,
		UserAgent:          oc.UserAgent,
		AcceptLanguage:     oc.AcceptLanguage,
		TxnID:              transactionID,
		OrderAmount:        amount,
		OrderCurrency:      currency,
		TxnType:            txnType,
		CVVResult:          oc.CVVResult,
		ForwardedIP:        oc.ForwardedIP,
	}
}

// Params maps the request onto minFraud field names.
func (r FraudScoreRequest) Params(licenseKey string) nvp.Request {
	params := nvp.Request{
		"license_key":     licenseKey,
		"i":               r.IPAddress,
		"city":            r.BillingCity,
		"region":          r.BillingRegion,
		"postal":          r.BillingPostalCode,
		"country":         r.BillingCountry,
		"shipAddr":        r.ShippingAddress,
		"shipCity":        r.ShippingCity,
		"shipPostal":      r.ShippingPostalCode,
		"shipCountry":     r.ShippingCountry,
		"domain":          r.EmailDomain,
		"custPhone":       r.CustomerPhone,
		"emailMD5":        r.EmailMD5,
		"bin":             r.BinNumber,
		"sessionID":       r.SessionID,
		"user_agent":      r.UserAgent,
		"accept_language": r.AcceptLanguage,
		"txnID":           r.TxnID,
		"order_amount":    nvp.FormatAmount(r.OrderAmount),
		"order_currency":  r.OrderCurrency,
		"txn_type":        r.TxnType,
		"cvv_result":      r.CVVResult,
	}
	if r.ForwardedIP != "" {
		params["forwardedIP"] = r.ForwardedIP
	}
	return params
}

func joinAddress(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}

func emailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return domain
}

// emailMD5 hashes the address exactly as entered.
func emailMD5(email string) string {
	if email == "" {
		return ""
	}
	sum := md5.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}

// landline prefers the first number that is not a UK mobile, falling back to the main number.
func landline(numbers ...string) string {
	for _, n := range numbers {
		n = strings.TrimSpace(n)
		if n != "" && !strings.HasPrefix(n, mobilePrefix) {
			return n
		}
	}
	if len(numbers) > 0 {
		return strings.TrimSpace(numbers[0])
	}
	return ""
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

package service_test

import (
	"testing"

	"github.com/mark1979smith/farmison/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNewFraudScoreRequest(t *testing.T) {
	oc := service.OrderContext{
		IPAddress:            "81.2.69.160",
		ForwardedIP:          "10.0.0.1",
		BillingCity:          "Sheffield",
		BillingPostalCode:    "S1 2HE",
		ShippingAddressLines: []string{"Unit 4", "", "  Cutlers Way ", "Attercliffe"},
		ShippingCity:         "Sheffield",
		ShippingPostalCode:   "S9 3AB",
		ShippingCountry:      "IE",
		EmailAddress:         "test@example.com",
		Telephone:            "07700900123",
		AlternateTelephone:   "01142 496000",
		SessionID:            "sess-1",
		UserAgent:            "Mozilla/5.0",
		AcceptLanguage:       "en-GB",
	}

	r := service.NewFraudScoreRequest(oc, "FM000042", 12.5, "GBP", service.TxnTypePaypal)

	assert.Equal(t, "GB", r.BillingCountry)
	assert.Equal(t, "IE", r.ShippingCountry)
	assert.Equal(t, "", r.BillingRegion)
	assert.Equal(t, "Unit 4, Cutlers Way, Attercliffe", r.ShippingAddress)
	assert.Equal(t, "example.com", r.EmailDomain)
	assert.Equal(t, "55502f40dc8b7c769880b10874abc9d0", r.EmailMD5)
	assert.Equal(t, "01142 496000", r.CustomerPhone)
	assert.Equal(t, 12.5, r.OrderAmount)
	assert.Equal(t, "paypal", r.TxnType)
}

func TestNewFraudScoreRequest_CustomerPhone(t *testing.T) {
	tests := []struct {
		name      string
		telephone string
		alternate string
		want      string
	}{
		{name: "landline first", telephone: "0114 496 0000", alternate: "07700900123", want: "0114 496 0000"},
		{name: "mobile then landline", telephone: "07700900123", alternate: "020 7946 0000", want: "020 7946 0000"},
		{name: "only mobiles", telephone: "07700900123", alternate: "07700900456", want: "07700900123"},
		{name: "no alternate", telephone: "07700900123", want: "07700900123"},
		{name: "empty", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := service.OrderContext{Telephone: tt.telephone, AlternateTelephone: tt.alternate}
			r := service.NewFraudScoreRequest(oc, "FM000001", 1, "GBP", service.TxnTypePaypal)
			assert.Equal(t, tt.want, r.CustomerPhone)
		})
	}
}

func TestNewFraudScoreRequest_EmailWithoutDomain(t *testing.T) {
	r := service.NewFraudScoreRequest(service.OrderContext{EmailAddress: "nobody"}, "FM000001", 1, "GBP", service.TxnTypePaypal)

	assert.Equal(t, "", r.EmailDomain)
	assert.NotEmpty(t, r.EmailMD5)

	r = service.NewFraudScoreRequest(service.OrderContext{}, "FM000001", 1, "GBP", service.TxnTypePaypal)
	assert.Equal(t, "", r.EmailMD5)
}

func TestFraudScoreRequest_Params(t *testing.T) {
	r := service.NewFraudScoreRequest(service.OrderContext{IPAddress: "81.2.69.160"}, "FM000042", 12.5, "GBP", service.TxnTypePaypal)

	params := r.Params("KEY")

	assert.Equal(t, "KEY", params["license_key"])
	assert.Equal(t, "81.2.69.160", params["i"])
	assert.Equal(t, "GB", params["country"])
	assert.Equal(t, "GB", params["shipCountry"])
	assert.Equal(t, "FM000042", params["txnID"])
	assert.Equal(t, "12.50", params["order_amount"])
	assert.Equal(t, "GBP", params["order_currency"])
	assert.Equal(t, "paypal", params["txn_type"])
	assert.NotContains(t, params, "forwardedIP")

	r.ForwardedIP = "10.0.0.1"
	assert.Equal(t, "10.0.0.1", r.Params("KEY")["forwardedIP"])
}

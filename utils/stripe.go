package utils

import (
	"fmt"
	"math"

	"lms/config"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// CheckoutRequest carries everything needed to open a payment session
type CheckoutRequest struct {
	Amount      float64 // two-decimal major units
	ProductName string
	PurchaseID  string
	Origin      string // caller origin for redirect URLs
}

// CheckoutSession is the opaque provider handle for an in-progress payment
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentProvider creates checkout sessions with the external payment
// provider. Tests swap in a stub.
type PaymentProvider interface {
	CreateCheckoutSession(req CheckoutRequest) (*CheckoutSession, error)
}

// Payments is the payment provider used by handlers
var Payments PaymentProvider = &stripeClient{}

type stripeClient struct{}

// CreateCheckoutSession opens a Stripe checkout session for the frozen
// purchase amount and returns the redirect URL. The purchase id travels in
// the session metadata so the webhook can correlate the outcome.
func (sc *stripeClient) CreateCheckoutSession(req CheckoutRequest) (*CheckoutSession, error) {
	stripe.Key = config.AppConfig.StripeSecretKey

	origin := req.Origin
	if origin == "" {
		origin = config.AppConfig.FrontendURL
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(config.AppConfig.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					// Provider speaks minor units; floor matches its convention
					UnitAmount: stripe.Int64(int64(math.Floor(req.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(origin + "/loading/my-enrollments"),
		CancelURL:  stripe.String(origin + "/"),
		Metadata: map[string]string{
			"purchaseId": req.PurchaseID,
		},
	}

	session, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %v", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// VerifyWebhookEvent checks the Stripe signature and decodes the event
func VerifyWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, config.AppConfig.StripeWebhookSecret)
}

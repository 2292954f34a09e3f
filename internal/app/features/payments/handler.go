// internal/app/features/payments/handler.go
package payments

import (
	"math"
	"net/http"

	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.uber.org/zap"
)

// Handler creates Stripe payment intents for class enrollment. Enabled
// is false when no Stripe key is configured, in which case the endpoint
// reports 503 instead of failing mid-payment.
type Handler struct {
	Enabled bool
	Log     *zap.Logger
}

// NewHandler constructs a Payments handler. The Stripe client key is
// process-global (stripe.Key), set during bootstrap.
func NewHandler(enabled bool, logger *zap.Logger) *Handler {
	return &Handler{Enabled: enabled, Log: logger}
}

// HandleCreateIntent handles POST /create-payment-intent. The client
// sends the class price in dollars; Stripe wants cents.
func (h *Handler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled {
		httpjson.Write(w, http.StatusServiceUnavailable, httpjson.M{
			"message": "payments are not configured",
		})
		return
	}

	var body struct {
		Price float64 `json:"price"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}
	if body.Price <= 0 {
		httpjson.BadRequest(w, "price must be positive")
		return
	}

	amount := int64(math.Round(body.Price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		h.Log.Error("payment intent create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"clientSecret": pi.ClientSecret})
}

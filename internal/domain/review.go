package domain

// A review travels as a JSON object; only these fields are read or written here.
const (
	FieldReview     = "review" // free text
	FieldSentiment  = "sentiment"
	FieldDealership = "dealership"
	FieldError      = "error"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Failed reports whether a backend reply is the error-shaped fallback. Only
// objects can carry it; lists and null are successful replies.
func Failed(reply any) bool {
	m, ok := reply.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[FieldError]
	return ok
}

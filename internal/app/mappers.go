package app

import (
	"strconv"
	"strings"

	"dealership/internal/domain"
)

// review text lives under "review"; older exports used other names
var reviewTextAliases = []string{domain.FieldReview, "text", "comment"}

// lookupStr returns the string at key or "".
func lookupStr(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// reviewText returns the first non-blank review text, or "".
func reviewText(m map[string]any) string {
	for _, k := range reviewTextAliases {
		if s := strings.TrimSpace(lookupStr(m, k)); s != "" {
			return s
		}
	}
	return ""
}

// hasSentiment reports whether m already carries a usable label.
func hasSentiment(m map[string]any) bool {
	s, ok := m[domain.FieldSentiment].(string)
	return ok && s != ""
}

// dealershipID reads the dealership id for log fields (float64/int/string).
func dealershipID(m map[string]any) int64 {
	switch v := m[domain.FieldDealership].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// sentimentLabel extracts the label from an Analyze result.
func sentimentLabel(res map[string]any) any {
	if v, ok := res[domain.FieldSentiment]; ok {
		return v
	}
	return domain.SentimentNeutral
}

// Package phone normalizes lead phone numbers, the business key of a lead.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when no region is configured
const DefaultRegion = "US"

// Normalizer formats phone numbers to E.164 for a default region
type Normalizer struct {
	region string
}

// NewNormalizer creates a normalizer for the given ISO 3166 region code
func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: region}
}

// Normalize formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func (n *Normalizer) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, n.region)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dealersync/dealersync/internal/normalize"
	"github.com/samber/lo"
)

var (
	nonDigits      = regexp.MustCompile(`\D+`)
	powerKW        = regexp.MustCompile(`(?i)(\d+)\s*kW`)
	powerPS        = regexp.MustCompile(`(?i)(\d+)\s*PS`)
	registrationMY = regexp.MustCompile(`^(\d{2})/(\d{4})$`)
	metallicMarker = regexp.MustCompile(`(?i)\s*metallic\s*`)
)

// multiWordMakes are manufacturer names a naive first-token split would break.
// Order matters: longer names first so e.g. "Land Rover Defender" never splits
// inside the make.
var multiWordMakes = []string{
	"Mercedes-Benz",
	"Alfa Romeo",
	"Aston Martin",
	"Land Rover",
	"Rolls-Royce",
	"DS Automobiles",
	"Lynk & Co",
}

// MakeModel splits a listing title into make and model. Known multi-word
// manufacturer prefixes take priority; otherwise the first whitespace-delimited
// token is the make and the remainder the model.
func MakeModel(title string) (*string, *string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, nil
	}

	for _, mk := range multiWordMakes {
		if len(trimmed) >= len(mk) && strings.EqualFold(trimmed[:len(mk)], mk) {
			rest := strings.TrimSpace(trimmed[len(mk):])
			if rest == "" {
				return lo.ToPtr(mk), nil
			}
			return lo.ToPtr(mk), lo.ToPtr(rest)
		}
	}

	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 1 {
		return lo.ToPtr(parts[0]), nil
	}

	return lo.ToPtr(parts[0]), lo.ToPtr(strings.TrimSpace(parts[1]))
}

// Number strips every non-digit character and parses the rest as a base-10
// integer. Empty residual or parse failure yields nil.
func Number(raw string) *int {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return nil
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}

	return &value
}

// Power extracts kilowatt and horsepower values from one free-text string.
// Either, both or neither may be present.
func Power(raw string) (*int, *int) {
	var kw, ps *int

	if m := powerKW.FindStringSubmatch(raw); m != nil {
		kw = Number(m[1])
	}
	if m := powerPS.FindStringSubmatch(raw); m != nil {
		ps = Number(m[1])
	}

	return kw, ps
}

// Registration reformats MM/YYYY source text to YYYYMM. Any other shape
// passes through unchanged, so already-canonical values survive a re-parse.
func Registration(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := registrationMY.FindStringSubmatch(trimmed); m != nil {
		return m[2] + m[1]
	}

	return trimmed
}

// Color strips a case-insensitive "metallic" marker from raw color text and
// normalizes the residue through the color table.
func Color(raw string) (*string, bool) {
	metallic := metallicMarker.MatchString(raw)
	residual := metallicMarker.ReplaceAllString(raw, " ")

	return normalize.Color.Normalize(residual), metallic
}

// Interior splits raw interior text on commas and assigns the first token
// matching the material table and the first token matching the color table.
// The roles are tested independently; one token may satisfy both.
func Interior(raw string) (*string, *string) {
	var material, color *string

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if material == nil {
			material = normalize.InteriorMaterial.Normalize(token)
		}
		if color == nil {
			color = normalize.Color.Normalize(token)
		}
	}

	return material, color
}

// Condition maps raw condition text to NEW or USED, defaulting to USED for
// unmapped non-empty text since storefronts list used stock by default.
func Condition(raw string) string {
	if cond := normalize.Condition.Normalize(raw); cond != nil {
		return *cond
	}

	return "USED"
}

// AccidentDamaged interprets accident wording. Explicit "accident-free" text
// is evidence of false, explicit damage wording evidence of true; absence
// stays nil because source pages omit the field inconsistently and nil
// correctly encodes unknown.
func AccidentDamaged(raw string) *bool {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return nil
	}

	if strings.Contains(lowered, "unfallfrei") {
		return lo.ToPtr(false)
	}
	if strings.Contains(lowered, "unfallfahrzeug") || strings.Contains(lowered, "beschädigt") {
		return lo.ToPtr(true)
	}

	return nil
}

// Price parses raw price text into an integer amount plus detected currency
// and price type. Currency defaults to EUR, price type to GROSS unless a net
// marker is present.
func Price(raw string) (*int, string, string) {
	priceType := "GROSS"
	if strings.Contains(strings.ToLower(raw), "netto") || strings.Contains(raw, "zzgl. MwSt") {
		priceType = "NET"
	}

	currency := "EUR"
	switch {
	case strings.Contains(raw, "CHF"):
		currency = "CHF"
	case strings.Contains(raw, "£") || strings.Contains(raw, "GBP"):
		currency = "GBP"
	}

	// Drop decimal cents before the digit strip so "12.990,00 €" stays 12990.
	amountText := raw
	if ix := strings.LastIndex(amountText, ","); ix != -1 {
		amountText = amountText[:ix]
	}

	return Number(amountText), currency, priceType
}

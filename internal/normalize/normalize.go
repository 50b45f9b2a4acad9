package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"billing-backend/internal/models"
)

// The UI sends loosely-typed payloads: free-text dates, ids and amounts that
// may arrive as JSON numbers or strings, and a variable-length item list.
// Every function here is total — absence, wrong type and malformed strings
// all degrade to a default instead of failing the request.

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe   = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`)
	nonDigitsRe = regexp.MustCompile(`\D`)
)

// Date canonicalizes a calendar date to YYYY-MM-DD. D-M-YYYY and DD-MM-YYYY
// are rewritten with zero padding; any other non-empty string passes through
// unchanged (the backend is the validator, not this function). Empty input
// yields "".
func Date(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	if dmyDateRe.MatchString(s) {
		parts := strings.Split(s, "-")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		return fmt.Sprintf("%s-%02d-%02d", parts[2], month, day)
	}
	return s
}

// PositiveInt coerces an id-like value to a positive integer, truncating
// toward zero. ok is false for anything non-positive or non-numeric; callers
// must never pass such an id downstream.
func PositiveInt(v interface{}) (int, bool) {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return int(math.Trunc(n)), true
}

// Amount coerces a monetary value to a number, falling back to 0 so totals
// can always participate in arithmetic.
func Amount(v interface{}) float64 {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseNumeric parses a display string ("12.50") as a number, returning 0
// for anything non-numeric. Empty input counts as 0.
func ParseNumeric(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Items canonicalizes a loose item list: accepts an array or a JSON-encoded
// array string, trims each field to a display string, and drops rows where
// name, qty and price are all empty. Order is preserved; nothing is deduped.
func Items(v interface{}) []models.LineItem {
	var raw []interface{}
	switch t := v.(type) {
	case nil:
	case string:
		// JSON-encoded array string; decode failure leaves raw empty
		json.Unmarshal([]byte(t), &raw)
	case []byte:
		json.Unmarshal(t, &raw)
	case []interface{}:
		raw = t
	case []models.LineItem:
		out := make([]models.LineItem, 0, len(t))
		for _, it := range t {
			out = appendItem(out, it)
		}
		return out
	}

	out := make([]models.LineItem, 0, len(raw))
	for _, e := range raw {
		m, _ := e.(map[string]interface{})
		out = appendItem(out, models.LineItem{
			Name:  asString(m["name"]),
			Qty:   asString(m["qty"]),
			Price: asString(m["price"]),
		})
	}
	return out
}

func appendItem(items []models.LineItem, it models.LineItem) []models.LineItem {
	it.Name = strings.TrimSpace(it.Name)
	it.Qty = strings.TrimSpace(it.Qty)
	it.Price = strings.TrimSpace(it.Price)
	if it.Name == "" && it.Qty == "" && it.Price == "" {
		return items
	}
	return append(items, it)
}

// ComputeTotal sums qty*price over the items. This is the fallback total
// when the caller supplies none.
func ComputeTotal(items []models.LineItem) float64 {
	var total float64
	for _, it := range items {
		total += ParseNumeric(it.Qty) * ParseNumeric(it.Price)
	}
	return total
}

// DecodeItemTable defensively decodes the persisted item-table value. A
// corrupt or empty column yields an empty list — one bad bill must never
// fail a multi-bill listing.
func DecodeItemTable(v interface{}) []models.LineItem {
	switch t := v.(type) {
	case []byte:
		return decodeJSONItems(t)
	case string:
		return decodeJSONItems([]byte(t))
	case []models.LineItem:
		if t == nil {
			return []models.LineItem{}
		}
		return t
	case []interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return []models.LineItem{}
		}
		return decodeJSONItems(b)
	}
	return []models.LineItem{}
}

func decodeJSONItems(b []byte) []models.LineItem {
	if len(bytes.TrimSpace(b)) == 0 {
		return []models.LineItem{}
	}
	var items []models.LineItem
	if err := json.Unmarshal(b, &items); err != nil || items == nil {
		return []models.LineItem{}
	}
	return items
}

// BillNumberDigits extracts the numeric part of a bill number label, e.g.
// "INV-012" -> 12. Returns 0 when there are no digits.
func BillNumberDigits(billNo string) int {
	digits := nonDigitsRe.ReplaceAllString(billNo, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func toNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		n, err := t.Float64()
		return n, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	}
	return 0, false
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Package pricing implements the quotation pricing engine: pure,
// deterministic functions over float64 inputs with no I/O.
//
// The engine does not validate its inputs. Callers are expected to supply
// non-negative, finite numbers; NaN and Inf propagate through the
// arithmetic unchanged.
package pricing

// DiscountType selects how a quotation discount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Item is the subset of a quotation line the engine aggregates over.
type Item struct {
	Quantity  float64
	UnitPrice float64
	Total     float64
}

// Totals holds the four derived monetary fields of a quotation.
type Totals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	Total          float64
}

// LineTotal returns quantity * unitPrice.
func LineTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// Subtotal sums the stored Total of each item. Line totals are not
// recomputed here, so a manually overridden item total survives
// aggregation.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

// TaxAmount returns the tax due on subtotal at taxRatePercent (0-100).
func TaxAmount(subtotal, taxRatePercent float64) float64 {
	return subtotal * taxRatePercent / 100
}

// DiscountAmount resolves a discount against subtotal. A percentage
// discount is taken from the subtotal; a fixed discount is returned
// verbatim and is not capped, so it may exceed the subtotal and drive the
// grand total negative.
func DiscountAmount(subtotal float64, discountType DiscountType, discountValue float64) float64 {
	if discountType == DiscountPercentage {
		return subtotal * discountValue / 100
	}
	return discountValue
}

// Total returns subtotal + taxAmount - discountAmount with no rounding.
func Total(subtotal, taxAmount, discountAmount float64) float64 {
	return subtotal + taxAmount - discountAmount
}

// Compute derives all four monetary fields from the item set and rates.
// The write path calls this before every persist so the stored derived
// fields always agree with the raw inputs.
func Compute(items []Item, taxRatePercent float64, discountType DiscountType, discountValue float64) Totals {
	subtotal := Subtotal(items)
	tax := TaxAmount(subtotal, taxRatePercent)
	discount := DiscountAmount(subtotal, discountType, discountValue)
	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		Total:          Total(subtotal, tax, discount),
	}
}

package quotations

import "fmt"

// DefaultQuotePrefix is used when a company has no quote prefix configured.
const DefaultQuotePrefix = "QT-"

// FormatQuoteNumber renders a quote number as the prefix followed by the
// sequence zero-padded to four digits. Padding only pads: sequences past
// 9999 keep all their digits ("QT-10000").
func FormatQuoteNumber(prefix string, seq int64) string {
	if prefix == "" {
		prefix = DefaultQuotePrefix
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}

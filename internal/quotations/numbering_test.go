package quotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuoteNumber(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		seq    int64
		want   string
	}{
		{name: "first", prefix: "QT-", seq: 1, want: "QT-0001"},
		{name: "padded", prefix: "QT-", seq: 42, want: "QT-0042"},
		{name: "four digits", prefix: "QT-", seq: 9999, want: "QT-9999"},
		{name: "overflow keeps digits", prefix: "QT-", seq: 10000, want: "QT-10000"},
		{name: "custom prefix", prefix: "INV-", seq: 7, want: "INV-0007"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatQuoteNumber(tc.prefix, tc.seq))
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

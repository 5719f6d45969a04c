package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPayoutAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    bool
	}{
		{name: "Plain account number", account: "1144052312", want: true},
		{name: "Spaced account number", account: "1144 0523 12", want: true},
		{name: "Valid card number", account: "4539148803436467", want: true},
		{name: "Card number with bad check digit", account: "4539148803436468", want: false},
		{name: "Empty", account: "", want: false},
		{name: "Letters", account: "12345abc", want: false},
		{name: "Too short", account: "12345", want: false},
		{name: "Too long", account: "123456789012345678901", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPayoutAccount(tt.account))
		})
	}
}

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3-lines-studio/pagesmith/internal/types"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{name: "us digits", raw: "5125551234", want: "(512) 555-1234"},
		{name: "e164", raw: "+15125551234", want: "(512) 555-1234"},
		{name: "explicit region", raw: "020 7946 0018", region: "GB", want: "020 7946 0018"},
		{name: "empty", raw: "", want: ""},
		{name: "unparseable", raw: "call us", want: "call us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.raw, tt.region))
		})
	}
}

func TestPhoneURI(t *testing.T) {
	assert.Equal(t, "tel:+15125551234", PhoneURI("(512) 555-1234", ""))
	assert.Equal(t, "tel:call us", PhoneURI("call us", "US"))
}

func TestAddressLines(t *testing.T) {
	addr := types.Address{
		Line1:       "7900 Westheimer Rd",
		Line2:       "Unit B",
		City:        "Houston",
		Region:      "TX",
		PostalCode:  "77063",
		CountryCode: "US",
	}

	lines := AddressLines(addr)
	assert.Equal(t, [2]string{"7900 Westheimer Rd", "Houston, TX"}, lines)
	assert.Equal(t, "Houston, TX", Locality(addr))
}

func TestClock(t *testing.T) {
	tests := map[string]string{
		"09:00": "9:00 AM",
		"12:00": "12:00 PM",
		"00:30": "12:30 AM",
		"17:45": "5:45 PM",
		"later": "later",
	}

	for in, want := range tests {
		assert.Equal(t, want, Clock(in), in)
	}
}

func TestDayHours(t *testing.T) {
	assert.Equal(t, Closed, DayHours(types.DayHours{IsClosed: true}))
	assert.Equal(t, Closed, DayHours(types.DayHours{}))
	assert.Equal(t, "11:00 AM - 10:00 PM", DayHours(types.DayHours{
		OpenIntervals: []types.Interval{{Start: "11:00", End: "22:00"}},
	}))
}

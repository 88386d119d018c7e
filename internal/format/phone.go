package format

import (
	"github.com/nyaruka/phonenumbers"
)

const DefaultPhoneRegion = "US"

// Phone renders raw in the national format of its region, e.g. "(512) 555-1234".
// Input that cannot be parsed is returned unchanged.
func Phone(raw, region string) string {
	if raw == "" {
		return ""
	}
	if region == "" {
		region = DefaultPhoneRegion
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// PhoneURI returns a tel: link target in E.164 form, falling back to raw.
func PhoneURI(raw, region string) string {
	if region == "" {
		region = DefaultPhoneRegion
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "tel:" + raw
	}
	return "tel:" + phonenumbers.Format(num, phonenumbers.E164)
}

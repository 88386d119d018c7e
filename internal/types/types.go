package types

import (
	"encoding/json"
	"fmt"
)

// ID is a record identifier. The data layer emits ids as strings or bare numbers.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Meta struct {
	EntityType string `json:"entityType"`
	Locale     string `json:"locale"`
}

type Image struct {
	URL           string `json:"url" validate:"required"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	AlternateText string `json:"alternateText"`
}

type Logo struct {
	Image Image `json:"image"`
}

type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"uRL" validate:"required"`
}

// Site is the global business record shared by every page of a build.
type Site struct {
	Name              string `json:"name" validate:"required"`
	Logo              Logo   `json:"logo"`
	Header            []Link `json:"c_header" validate:"dive"`
	Footer            []Link `json:"c_footer" validate:"dive"`
	InstagramHandle   string `json:"instagramHandle"`
	FacebookVanityURL string `json:"facebookVanityUrl"`
	TwitterHandle     string `json:"twitterHandle"`
}

type Address struct {
	Line1       string `json:"line1" validate:"required"`
	Line2       string `json:"line2"`
	City        string `json:"city" validate:"required"`
	Region      string `json:"region" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required"`
	CountryCode string `json:"countryCode" validate:"required"`
}

type Interval struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type DayHours struct {
	IsClosed      bool       `json:"isClosed"`
	OpenIntervals []Interval `json:"openIntervals" validate:"dive"`
}

type Hours struct {
	Monday    *DayHours `json:"monday"`
	Tuesday   *DayHours `json:"tuesday"`
	Wednesday *DayHours `json:"wednesday"`
	Thursday  *DayHours `json:"thursday"`
	Friday    *DayHours `json:"friday"`
	Saturday  *DayHours `json:"saturday"`
	Sunday    *DayHours `json:"sunday"`
}

type Day struct {
	Name  string
	Hours DayHours
}

// Days lists the days present in h, Monday first.
func (h Hours) Days() []Day {
	week := []struct {
		name string
		day  *DayHours
	}{
		{"Monday", h.Monday},
		{"Tuesday", h.Tuesday},
		{"Wednesday", h.Wednesday},
		{"Thursday", h.Thursday},
		{"Friday", h.Friday},
		{"Saturday", h.Saturday},
		{"Sunday", h.Sunday},
	}

	days := make([]Day, 0, len(week))
	for _, d := range week {
		if d.day == nil {
			continue
		}
		days = append(days, Day{Name: d.name, Hours: *d.day})
	}
	return days
}

type Photo struct {
	Image       Image  `json:"image"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one directory entity; one page is generated per location.
type Location struct {
	ID                 ID          `json:"id" validate:"required"`
	UID                ID          `json:"uid"`
	Meta               Meta        `json:"meta"`
	Site               Site        `json:"_site"`
	Name               string      `json:"name" validate:"required"`
	Address            Address     `json:"address"`
	MainPhone          string      `json:"mainPhone" validate:"required"`
	Description        string      `json:"description"`
	Neighborhood       string      `json:"neighborhood"`
	Hours              *Hours      `json:"hours"`
	PhotoGallery       []Photo     `json:"photoGallery" validate:"dive"`
	Slug               string      `json:"slug"`
	GeocodedCoordinate *Coordinate `json:"geocodedCoordinate"`
	Services           []string    `json:"services"`
	PaymentOptions     []string    `json:"paymentOptions"`
	FeaturedFAQs       []FAQ       `json:"c_featuredFAQs" validate:"dive"`
}

// SiteDocument is the document handed to templates that are not bound to a stream.
type SiteDocument struct {
	Site Site `json:"_site"`
}

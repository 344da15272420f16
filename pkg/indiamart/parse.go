package indiamart

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// priceRe matches "₹ 1,200 / Kilogram", "Rs. 85/kg" and similar price tags.
var priceRe = regexp.MustCompile(`(?:₹|Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)\s*(?:/|per\s*)\s*([A-Za-z ]+)`)

// parseListings extracts supplier offers from a search result document.
// Cards without a parseable price are skipped.
func parseListings(doc *goquery.Document) []Listing {
	var listings []Listing
	doc.Find(".prd-card, .card, .listing-card").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".prd-name, .producttitle, .title").First().Text())
		supplier := strings.TrimSpace(card.Find(".company-name, .companyname, .supplier").First().Text())
		priceText := strings.TrimSpace(card.Find(".price, .prc, .prd-price").First().Text())
		if priceText == "" {
			priceText = strings.TrimSpace(card.Text())
		}

		price, unit, ok := ParsePrice(priceText)
		if !ok {
			return
		}
		listings = append(listings, Listing{
			Title:    title,
			Supplier: supplier,
			Price:    price,
			Unit:     unit,
		})
	})
	return listings
}

// ParsePrice extracts the first amount and unit from a price string.
func ParsePrice(s string) (price float64, unit string, ok bool) {
	m := priceRe.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, "", false
	}
	unit = strings.ToLower(strings.TrimSpace(m[2]))
	// Trim trailing words like "onwards".
	if fields := strings.Fields(unit); len(fields) > 0 {
		unit = fields[0]
		if unit == "metric" && len(fields) > 1 {
			unit = "metric " + fields[1]
		}
	}
	return price, unit, true
}

// PerKilogram converts a listing price to a per-kilogram figure. The bool is
// false for units that are not kilogram-equivalent (bags, pieces, litres);
// such listings must be rejected rather than guessed at.
func PerKilogram(price float64, unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg", "kgs", "kilogram", "kilograms", "kilo":
		return price, true
	case "gram", "grams", "g", "gm":
		return price * 1000, true
	case "quintal":
		return price / 100, true
	case "ton", "tonne", "metric ton", "metric tonne":
		return price / 1000, true
	default:
		return 0, false
	}
}

package emails

import (
	"fmt"
	"strings"

	"truckdeals-backend/internal/domain"
	"truckdeals-backend/internal/pkg/format"
)

// Drafter builds outreach email drafts for dealer negotiation. It only
// composes text; sending belongs to the caller's mail client.
type Drafter struct {
	BuyerName  string
	BuyerPhone string
}

// Draft is a composed email, ready to paste or hand to a mail API.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DirectOTD composes the initial out-the-door price request for one listing.
func (d *Drafter) DirectOTD(l *domain.Listing) Draft {
	subject := fmt.Sprintf("OTD Price Request - %d %s %s", l.Year, l.Make, l.Model)
	if l.Trim != nil && *l.Trim != "" {
		subject += " " + *l.Trim
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nI am interested in the %d %s %s", l.Year, l.Make, l.Model)
	if l.Trim != nil && *l.Trim != "" {
		b.WriteString(" " + *l.Trim)
	}
	b.WriteString(" currently listed on your website.\n\n")
	if l.StockNumber != nil && *l.StockNumber != "" {
		fmt.Fprintf(&b, "Stock #: %s\n", *l.StockNumber)
	}
	if l.VIN != nil && *l.VIN != "" {
		fmt.Fprintf(&b, "VIN: %s\n", *l.VIN)
	}
	if l.Price != nil {
		fmt.Fprintf(&b, "Listed Price: %s\n", format.Money(*l.Price))
	}
	b.WriteString("\nCould you please provide your best out-the-door price including all taxes, fees, and any available incentives/rebates? I have financing arranged externally.\n\nI am a serious buyer looking to make a purchase decision within the next week.\n\nThank you,\n")
	d.signature(&b)

	return Draft{Subject: subject, Body: b.String()}
}

// Competitive composes a price-match request leveraging a quote from another
// dealer.
func (d *Drafter) Competitive(l *domain.Listing, competitorPrice int64) Draft {
	subject := fmt.Sprintf("Price Match Request - %d %s %s", l.Year, l.Make, l.Model)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nI am looking to purchase a %d %s %s", l.Year, l.Make, l.Model)
	if l.Trim != nil && *l.Trim != "" {
		b.WriteString(" " + *l.Trim)
	}
	fmt.Fprintf(&b, ".\n\nI have received an out-the-door quote of %s from another dealer in the area for a comparably equipped vehicle.\n\n", format.Money(competitorPrice))
	if l.StockNumber != nil && *l.StockNumber != "" {
		fmt.Fprintf(&b, "Regarding your Stock #%s, ", *l.StockNumber)
	} else {
		b.WriteString("For the vehicle you have listed, ")
	}
	b.WriteString("can you match or beat this price? Please provide your best OTD price including all taxes and fees.\n\nI am ready to make a decision this week and would prefer to work with your dealership if the numbers work out.\n\nThank you,\n")
	d.signature(&b)

	return Draft{Subject: subject, Body: b.String()}
}

// MultiVehicle composes a batch quote request covering several listings at
// one dealer. The make/model in the subject comes from the first listing.
func (d *Drafter) MultiVehicle(dealerName string, listings []domain.Listing) Draft {
	if len(listings) == 0 {
		return Draft{}
	}
	first := listings[0]
	subject := fmt.Sprintf("Quote Request - %s %s Inventory", first.Make, first.Model)

	greeting := dealerName
	if greeting == "" {
		greeting = "Sales Team"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nI am in the market for a %s %s and noticed you have several in stock that interest me. Could you please provide out-the-door pricing for each of the following vehicles?\n\n",
		greeting, first.Make, first.Model)
	for i := range listings {
		l := &listings[i]
		fmt.Fprintf(&b, "%d. %d %s %s", i+1, l.Year, l.Make, l.Model)
		if l.Trim != nil && *l.Trim != "" {
			b.WriteString(" " + *l.Trim)
		}
		if l.StockNumber != nil && *l.StockNumber != "" {
			fmt.Fprintf(&b, " (Stock #%s)", *l.StockNumber)
		}
		if l.Price != nil {
			fmt.Fprintf(&b, " - Listed at %s", format.Money(*l.Price))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nPlease include all taxes, fees, and any available incentives/rebates in your OTD quotes. I have outside financing arranged.\n\nThank you,\n")
	d.signature(&b)

	return Draft{Subject: subject, Body: b.String()}
}

func (d *Drafter) signature(b *strings.Builder) {
	if d.BuyerName != "" {
		b.WriteString(d.BuyerName + "\n")
	}
	if d.BuyerPhone != "" {
		b.WriteString(d.BuyerPhone + "\n")
	}
}

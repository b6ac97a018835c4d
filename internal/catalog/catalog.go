package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// TicketType is a purchasable ticket category with its unit price in euro.
type TicketType struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PaymentMethod is an accepted way of paying at the end of a booking.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Tickets is an immutable, ordered ticket catalog.
type Tickets struct {
	entries []TicketType
}

// PaymentMethods is an immutable, ordered payment method catalog.
type PaymentMethods struct {
	entries []PaymentMethod
}

func DefaultTickets() *Tickets {
	return &Tickets{entries: []TicketType{
		{Name: "Intero", Price: 15},
		{Name: "Ridotto", Price: 10},
		{Name: "Bambino", Price: 8},
		{Name: "Famiglia", Price: 35},
	}}
}

func DefaultPaymentMethods() *PaymentMethods {
	return &PaymentMethods{entries: []PaymentMethod{
		{ID: "card", Name: "Carta di Credito", Icon: "💳"},
		{ID: "paypal", Name: "PayPal", Icon: "📱"},
		{ID: "transfer", Name: "Bonifico", Icon: "🏦"},
	}}
}

// ParseTickets builds a catalog from "Name:price,Name:price". An empty
// string yields the default catalog.
func ParseTickets(raw string) (*Tickets, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTickets(), nil
	}

	seen := make(map[string]bool)
	var entries []TicketType
	for _, item := range strings.Split(raw, ",") {
		name, priceStr, ok := strings.Cut(strings.TrimSpace(item), ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid ticket catalog entry %q", item)
		}

		price, err := strconv.Atoi(strings.TrimSpace(priceStr))
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price for ticket type %s", name)
		}

		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate ticket type %s", name)
		}
		seen[key] = true

		entries = append(entries, TicketType{Name: name, Price: price})
	}

	return &Tickets{entries: entries}, nil
}

// All returns a copy of the catalog entries in catalog order.
func (c *Tickets) All() []TicketType {
	out := make([]TicketType, len(c.entries))
	copy(out, c.entries)
	return out
}

// Match returns the first ticket type whose name appears in text,
// ignoring case.
func (c *Tickets) Match(text string) (TicketType, bool) {
	lower := strings.ToLower(text)
	for _, t := range c.entries {
		if strings.Contains(lower, strings.ToLower(t.Name)) {
			return t, true
		}
	}
	return TicketType{}, false
}

// Price looks a ticket type up by name, ignoring case.
func (c *Tickets) Price(name string) (int, bool) {
	for _, t := range c.entries {
		if strings.EqualFold(t.Name, name) {
			return t.Price, true
		}
	}
	return 0, false
}

func (c *PaymentMethods) All() []PaymentMethod {
	out := make([]PaymentMethod, len(c.entries))
	copy(out, c.entries)
	return out
}

// Match returns the first payment method whose name appears in text,
// ignoring case.
func (c *PaymentMethods) Match(text string) (PaymentMethod, bool) {
	lower := strings.ToLower(text)
	for _, m := range c.entries {
		if strings.Contains(lower, strings.ToLower(m.Name)) {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

func (c *PaymentMethods) ByID(id string) (PaymentMethod, bool) {
	for _, m := range c.entries {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

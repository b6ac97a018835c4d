package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketsMatchIsCaseInsensitive(t *testing.T) {
	c := DefaultTickets()

	for _, input := range []string{"intero", "INTERO", "Intero", "vorrei un biglietto InTeRo"} {
		tt, ok := c.Match(input)
		require.True(t, ok, input)
		assert.Equal(t, "Intero", tt.Name)
		assert.Equal(t, 15, tt.Price)
	}
}

func TestTicketsMatchFirstInCatalogOrder(t *testing.T) {
	c := DefaultTickets()

	tt, ok := c.Match("bambino oppure ridotto")
	require.True(t, ok)
	assert.Equal(t, "Ridotto", tt.Name)
}

func TestTicketsNoMatch(t *testing.T) {
	_, ok := DefaultTickets().Match("senior")
	assert.False(t, ok)
}

func TestTicketsPrice(t *testing.T) {
	c := DefaultTickets()

	p, ok := c.Price("famiglia")
	require.True(t, ok)
	assert.Equal(t, 35, p)

	_, ok = c.Price("vip")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	c := DefaultTickets()
	entries := c.All()
	entries[0].Price = 999

	p, _ := c.Price("Intero")
	assert.Equal(t, 15, p)
}

func TestParseTickets(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []TicketType
		wantErr bool
	}{
		{name: "empty uses defaults", raw: "", want: DefaultTickets().All()},
		{name: "custom", raw: "Adulto:20, Studente:12", want: []TicketType{{"Adulto", 20}, {"Studente", 12}}},
		{name: "missing price", raw: "Adulto", wantErr: true},
		{name: "zero price", raw: "Adulto:0", wantErr: true},
		{name: "duplicate", raw: "Adulto:1,adulto:2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseTickets(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.All())
		})
	}
}

func TestPaymentMethodsMatch(t *testing.T) {
	c := DefaultPaymentMethods()

	m, ok := c.Match("pago con paypal grazie")
	require.True(t, ok)
	assert.Equal(t, "paypal", m.ID)

	m, ok = c.Match("CARTA DI CREDITO")
	require.True(t, ok)
	assert.Equal(t, "card", m.ID)

	_, ok = c.Match("contanti")
	assert.False(t, ok)
}

func TestPaymentMethodsByID(t *testing.T) {
	m, ok := DefaultPaymentMethods().ByID("paypal")
	assert.True(t, ok)
	assert.Equal(t, "PayPal", m.Name)

	_, ok = DefaultPaymentMethods().ByID("cash")
	assert.False(t, ok)
}

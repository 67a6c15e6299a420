package smsparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Received(t *testing.T) {
	p := NewParser(DefaultConfig())

	tx := p.Parse("Confirmed. You have received Ksh1,200 from JOHN DOE 0722000000")
	require.NotNil(t, tx)

	assert.Equal(t, 1200.0, tx.Amount)
	assert.Equal(t, DirectionCredit, tx.Type)
	assert.Equal(t, "0722000000", tx.Party)
	assert.Equal(t, SourceSMSParsed, tx.Source)
	assert.Contains(t, tx.Description, "Payment received from")
}

func TestParser_Parse_Table(t *testing.T) {
	p := NewParser(DefaultConfig())

	tests := []struct {
		name      string
		sms       string
		wantNil   bool
		amount    float64
		direction string
		party     string
	}{
		{
			name:      "sent to named recipient",
			sms:       "Confirmed. Ksh500.00 sent to Jane Wanjiku on 12/1/24",
			amount:    500,
			direction: DirectionDebit,
			party:     "Jane Wanjiku",
		},
		{
			name:      "paid to merchant",
			sms:       "Confirmed. Ksh2,350 paid to Naivas Supermarket.",
			amount:    2350,
			direction: DirectionDebit,
			party:     "Naivas Supermarket",
		},
		{
			name:      "balance statement",
			sms:       "Your M-Pesa balance is Ksh3,407.50",
			amount:    3407.50,
			direction: DirectionUnknown,
			party:     "Unknown",
		},
		{
			name:      "airtime purchase",
			sms:       "You bought Ksh100 of airtime on 1/2/24",
			amount:    100,
			direction: DirectionDebit,
			party:     "Unknown",
		},
		{
			name:    "no amount at all",
			sms:     "Hello, are we meeting tomorrow?",
			wantNil: true,
		},
		{
			name:    "money words but no ksh amount",
			sms:     "Please send me some money when you can",
			wantNil: true,
		},
		{
			name:      "fallback amount anywhere",
			sms:       "You owe rent of KSh 7,000 this month",
			amount:    7000,
			direction: DirectionUnknown,
			party:     "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := p.Parse(tt.sms)
			if tt.wantNil {
				assert.Nil(t, tx)
				return
			}
			require.NotNil(t, tx)
			assert.Equal(t, tt.amount, tx.Amount)
			assert.Equal(t, tt.direction, tx.Type)
			assert.Equal(t, tt.party, tx.Party)
		})
	}
}

func TestParser_Parse_FirstTemplateWins(t *testing.T) {
	p := NewParser(DefaultConfig())

	// Both a received amount and a balance amount are present; the
	// received template is declared first so its capture is used.
	tx := p.Parse("Confirmed. You have received Ksh1,200 from John. New M-Pesa balance is Ksh3,400")
	require.NotNil(t, tx)
	assert.Equal(t, 1200.0, tx.Amount)
	assert.Equal(t, DirectionCredit, tx.Type)
}

func TestParser_Parse_Reference(t *testing.T) {
	p := NewParser(DefaultConfig())

	tx := p.Parse("QGH7X2KL9M Confirmed. Ksh450 sent to Peter Otieno")
	require.NotNil(t, tx)
	assert.Equal(t, "QGH7X2KL9M", tx.Reference)

	tx = p.Parse("Confirmed. Ksh450 sent to Peter")
	require.NotNil(t, tx)
	assert.Empty(t, tx.Reference)
}

func TestParser_Parse_Deterministic(t *testing.T) {
	p := NewParser(DefaultConfig())
	sms := "Confirmed. You have received Ksh1,200 from JOHN DOE 0722000000"

	first := p.Parse(sms)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Parse(sms))
	}
}

func TestParser_ParseSale(t *testing.T) {
	p := NewParser(DefaultConfig())

	tests := []struct {
		name     string
		sms      string
		wantNil  bool
		amount   float64
		category string
	}{
		{
			name:     "retail sale",
			sms:      "Sale of goods at the shop: KSh 1,500 received",
			amount:   1500,
			category: "retail",
		},
		{
			name:     "food sale",
			sms:      "Payment for meal KSh300",
			amount:   300,
			category: "food",
		},
		{
			name:     "uncategorized sale",
			sms:      "Sold item for Ksh 250",
			amount:   250,
			category: "general",
		},
		{
			name:    "sale keyword without amount",
			sms:     "Great sale happening this weekend!",
			wantNil: true,
		},
		{
			name:    "amount without sale keyword",
			sms:     "Received KSh 400 from Mary",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := p.ParseSale(tt.sms)
			if tt.wantNil {
				assert.Nil(t, sale)
				return
			}
			require.NotNil(t, sale)
			assert.Equal(t, tt.amount, sale.Amount)
			assert.Equal(t, tt.category, sale.Category)
		})
	}
}

package pricing

import "testing"

// TestComputeFinancials проверяет расчёт итоговых сумм договора
func TestComputeFinancials(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name            string
		unitPrice       string
		albums          string
		surcharge       bool
		depositOverride string
		expected        Financials
	}{
		{
			name:      "типовой договор",
			unitPrice: "2650",
			albums:    "10",
			expected: Financials{
				BasePrice: 2650, UnitPrice: 2650, Albums: 10,
				Total: 26500, Deposit: 7000, Remainder: 19500,
			},
		},
		{
			name:      "надбавка за цитаты",
			unitPrice: "2650",
			albums:    "10",
			surcharge: true,
			expected: Financials{
				BasePrice: 2650, UnitPrice: 2850, Albums: 10,
				Total: 28500, Deposit: 8000, Remainder: 20500, Surcharge: true,
			},
		},
		{
			name:            "операторская предоплата",
			unitPrice:       "2650",
			albums:          "10",
			depositOverride: "10000",
			expected: Financials{
				BasePrice: 2650, UnitPrice: 2650, Albums: 10,
				Total: 26500, Deposit: 10000, Remainder: 16500,
			},
		},
		{
			name:      "надбавка не прибавляется к нулевой цене",
			unitPrice: "",
			albums:    "10",
			surcharge: true,
			expected:  Financials{Surcharge: true, Albums: 10},
		},
		{
			name:      "нечисловые поля дают нули",
			unitPrice: "дорого",
			albums:    "мало",
			expected:  Financials{},
		},
		{
			name:      "предоплата меньше тысячи обнуляется",
			unitPrice: "1700",
			albums:    "1",
			expected: Financials{
				BasePrice: 1700, UnitPrice: 1700, Albums: 1,
				Total: 1700, Deposit: 0, Remainder: 1700,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ComputeFinancials(tt.unitPrice, tt.albums, tt.surcharge, tt.depositOverride)
			if got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

// TestComputeFinancials_Invariant проверяет, что остаток всегда равен
// сумме минус предоплата
func TestComputeFinancials_Invariant(t *testing.T) {
	catalog := DefaultCatalog()

	prices := []string{"1600", "1700", "2100", "2650", "2900"}
	albums := []string{"1", "10", "18", "25", "40"}

	for _, p := range prices {
		for _, a := range albums {
			for _, surcharge := range []bool{false, true} {
				fin := catalog.ComputeFinancials(p, a, surcharge, "")
				if fin.Total-fin.Deposit != fin.Remainder {
					t.Errorf("price %s albums %s surcharge %v: %d - %d != %d",
						p, a, surcharge, fin.Total, fin.Deposit, fin.Remainder)
				}
				if fin.Deposit%1000 != 0 {
					t.Errorf("price %s albums %s: deposit %d not rounded to thousand", p, a, fin.Deposit)
				}
			}
		}
	}
}

// TestRoundDownToThousand проверяет округление вниз до тысяч
func TestRoundDownToThousand(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{999, 0},
		{1000, 1000},
		{7950, 7000},
		{26500, 26000},
	}

	for _, tt := range tests {
		if got := RoundDownToThousand(tt.input); got != tt.expected {
			t.Errorf("RoundDownToThousand(%d): expected %d, got %d", tt.input, tt.expected, got)
		}
	}
}

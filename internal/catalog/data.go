package catalog

import "github.com/fuelops/tankboard/internal/model"

func sampleStations() []model.Station {
	return []model.Station{
		{ID: 1, Name: "Neste Express Viru", Address: "Viru väljak 4, Tallinn", Price: 1.689, SavingsPct: 4.2, Distance: "0.8 km"},
		{ID: 2, Name: "Circle K Laagri", Address: "Pärnu mnt 556, Laagri", Price: 1.702, SavingsPct: 3.5, Distance: "2.4 km"},
		{ID: 3, Name: "Olerex Peterburi", Address: "Peterburi tee 47, Tallinn", Price: 1.715, SavingsPct: 2.7, Distance: "3.1 km"},
		{ID: 4, Name: "Alexela Järve", Address: "Pärnu mnt 238, Tallinn", Price: 1.698, SavingsPct: 3.8, Distance: "4.5 km"},
	}
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		model.Transaction{
			ID:           "1",
			Time:         "Today 14:32",
			Card:         "**** 4521",
			Driver:       "M. Tamm",
			Station:      "Circle K Laagri",
			Liters:       86.4,
			Price:        14712, // cents
			DeviationPct: 18.0,
			Risk:         model.RiskHigh,
		}.WithDetails(model.TransactionDetails{
			Vehicle:              "Volvo FH16 · 412 TKL",
			Route:                "Tallinn – Pärnu",
			PreviousTransactions: 47,
			Timeline: []model.TimelineEvent{
				{Time: "14:29", Event: "Vehicle arrived at station"},
				{Time: "14:32", Event: "Card authorized"},
				{Time: "14:41", Event: "86.4 L dispensed"},
				{Time: "14:42", Event: "Deviation flagged: +18% vs tank capacity model"},
			},
		}),
		{
			ID:           "2",
			Time:         "Today 12:05",
			Card:         "**** 7733",
			Driver:       "K. Saar",
			Station:      "Neste Express Viru",
			Liters:       52.0,
			Price:        8783,
			DeviationPct: -1.5,
			Risk:         model.RiskLow,
		},
		model.Transaction{
			ID:           "3",
			Time:         "Yesterday 21:48",
			Card:         "**** 4521",
			Driver:       "M. Tamm",
			Station:      "Olerex Peterburi",
			Liters:       64.8,
			Price:        11113,
			DeviationPct: 12.5,
			Risk:         model.RiskHigh,
		}.WithDetails(model.TransactionDetails{
			Vehicle:              "Volvo FH16 · 412 TKL",
			Route:                "Tallinn – Narva",
			PreviousTransactions: 47,
			Timeline: []model.TimelineEvent{
				{Time: "21:45", Event: "Vehicle arrived at station"},
				{Time: "21:48", Event: "Card authorized"},
				{Time: "21:56", Event: "64.8 L dispensed"},
				{Time: "21:57", Event: "Deviation flagged: off-route fueling after 21:00"},
			},
		}),
	}
}

func sampleInsights() []model.Insight {
	return []model.Insight{
		{
			ID:     1,
			Title:  "Night fueling pattern on card **** 4521",
			Text:   "Two high-deviation transactions in 24h on the same card, one outside the assigned route corridor. Recommend a card limit review.",
			Action: "Review card limits",
		},
		{
			ID:     2,
			Title:  "Cheaper fuel available on Tallinn–Pärnu corridor",
			Text:   "Rerouting fueling stops to Neste Express Viru would save an estimated 4.2% on corridor volume at current prices.",
			Action: "Apply route suggestion",
		},
		{
			ID:     3,
			Title:  "Margin trending down since Wednesday",
			Text:   "Weekly margin is off 0.8pp while volume is flat. Price updates from two suppliers land tomorrow; expect partial recovery.",
			Action: "Open margin report",
		},
	}
}

func sampleSeries() []model.SeriesPoint {
	return []model.SeriesPoint{
		{Date: "Mon", Volume: 4820, Revenue: 8210, Margin: 11.2},
		{Date: "Tue", Volume: 5110, Revenue: 8695, Margin: 11.4},
		{Date: "Wed", Volume: 4990, Revenue: 8480, Margin: 11.1},
		{Date: "Thu", Volume: 5350, Revenue: 9120, Margin: 10.8},
		{Date: "Fri", Volume: 5890, Revenue: 10040, Margin: 10.6},
		{Date: "Sat", Volume: 4410, Revenue: 7530, Margin: 10.5},
		{Date: "Sun", Volume: 3980, Revenue: 6790, Margin: 10.4},
	}
}

func sampleKPIs() []model.KPI {
	return []model.KPI{
		{ID: "volume", Label: "Weekly volume", Value: "34,550 L", DeltaPct: 3.1},
		{ID: "revenue", Label: "Weekly revenue", Value: "€58,865", DeltaPct: 2.4},
		{ID: "margin", Label: "Avg margin", Value: "10.9%", DeltaPct: -0.8},
		{ID: "anomalies", Label: "Open anomalies", Value: "2", DeltaPct: 100.0},
	}
}

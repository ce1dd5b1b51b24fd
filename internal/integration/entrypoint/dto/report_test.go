package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/application/usecase/report"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestSummaryResponseSerializesNumbers(t *testing.T) {
	response := ToSummaryResponse(&report.GetSummaryOutput{
		Revenue:    dec(t, "150000"),
		Expense:    dec(t, "20000"),
		NetProfit:  dec(t, "130000"),
		TotalHours: dec(t, "100"),
		HourlyRate: dec(t, "1300"),
		ROI:        dec(t, "650.0"),
	})

	raw, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	for _, want := range []string{
		`"revenue":150000`,
		`"expense":20000`,
		`"net_profit":130000`,
		`"hourly_rate":1300`,
		`"roi":650`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
	if strings.Contains(body, `"revenue":"`) {
		t.Errorf("revenue serialized as a string: %s", body)
	}
}

func TestPortfolioResponseSerializesNumbers(t *testing.T) {
	response := ToPortfolioResponse(&report.GetPortfolioOutput{
		Items: []report.PortfolioItem{
			{SourceID: uuid.New(), Name: "Blog", Revenue: dec(t, "1500"), Percentage: dec(t, "75.0")},
			{SourceID: uuid.New(), Name: "Consulting", Revenue: dec(t, "500"), Percentage: dec(t, "25.0")},
		},
	})

	raw, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"percentage":75`) || !strings.Contains(body, `"percentage":25`) {
		t.Errorf("expected numeric percentages in %s", body)
	}
	if strings.Contains(body, `"percentage":"`) {
		t.Errorf("percentage serialized as a string: %s", body)
	}
}

func TestTransactionResponseSerializesNumbers(t *testing.T) {
	hours := dec(t, "12.5")
	tx := entity.NewTransaction(
		uuid.New(),
		entity.TransactionTypeRevenue,
		dec(t, "1250.50"),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		"sprint invoice",
		false,
		&hours,
	)

	raw, err := json.Marshal(ToTransactionResponse(tx))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"amount":1250.5`) {
		t.Errorf("expected numeric amount in %s", body)
	}
	if !strings.Contains(body, `"hours":12.5`) {
		t.Errorf("expected numeric hours in %s", body)
	}
}

package services_test

import (
	"opsintel/internal/dataset"
	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

func mustDay(value string) civil.Date {
	day, err := civil.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return day
}

func dayPtr(value string) *civil.Date {
	day := mustDay(value)
	return &day
}

func record(day, product, amount string, transactions int64) models.TransactionRecord {
	return models.TransactionRecord{
		Day:                  mustDay(day),
		Entity:               gofakeit.RandomString([]string{models.EntityBusiness, models.EntityIndividual}),
		Product:              product,
		PriceTier:            gofakeit.RandomString([]string{"normal", "intermediary", "aggressive", "domination"}),
		AnticipationMethod:   "Pix",
		PaymentMethod:        gofakeit.RandomString([]string{models.PaymentMethodCredit, models.PaymentMethodDebit}),
		Installments:         1,
		AmountTransacted:     decimal.RequireFromString(amount),
		QuantityTransactions: transactions,
		QuantityOfMerchants:  1,
	}
}

// dailySeries builds one pix record per consecutive day starting at start
func dailySeries(start string, amounts ...string) []models.TransactionRecord {
	day := mustDay(start)
	records := make([]models.TransactionRecord, 0, len(amounts))
	for _, amount := range amounts {
		records = append(records, record(day.String(), models.ProductPix, amount, 10))
		day = day.AddDays(1)
	}
	return records
}

func snapshotOf(records ...models.TransactionRecord) *dataset.Snapshot {
	return dataset.NewSnapshot(records)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

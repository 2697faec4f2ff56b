package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const sampleHeader = "day,entity,product,price_tier,anticipation_method,nitro_or_d0,payment_method,installments,amount_transacted,quantity_transactions,quantitu_of_merchants\n"

type LoaderTestSuite struct {
	suite.Suite
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) TestParse_CanonicalizesMisspelledColumn() {
	csvData := sampleHeader +
		"02/01/2024,PJ,pix,normal,D+1,,debit,1,1000.50,10,3\n"

	snapshot, err := Parse(strings.NewReader(csvData))

	s.Require().NoError(err)
	s.Require().Equal(1, snapshot.Len())
	record := snapshot.Records()[0]
	s.Equal(int64(3), record.QuantityOfMerchants)
	s.Equal(civil.Date{Year: 2024, Month: 1, Day: 2}, record.Day)
	s.True(decimal.RequireFromString("1000.50").Equal(record.AmountTransacted))
	s.Equal("", record.NitroOrD0)
	s.Equal(1, record.Installments)
}

func (s *LoaderTestSuite) TestParse_AcceptsCanonicalHeader() {
	csvData := "Day,Entity,Product,Payment_Method,Amount_Transacted,Quantity_Transactions,Quantity_Of_Merchants\n" +
		"2024-01-02,PF,tap,credit,250,5,1\n"

	snapshot, err := Parse(strings.NewReader(csvData))

	s.Require().NoError(err)
	s.Equal(1, snapshot.Len())
	s.Equal(models.ProductTap, snapshot.Records()[0].Product)
}

func (s *LoaderTestSuite) TestParse_SkipsInvalidRows() {
	csvData := sampleHeader +
		"02/01/2024,PJ,pix,normal,D+1,,debit,1,1000,10,3\n" +
		"not-a-date,PJ,pix,normal,D+1,,debit,1,1000,10,3\n" +
		"03/01/2024,PJ,pix,normal,D+1,,debit,1,abc,10,3\n" +
		"03/01/2024,PJ,pix,normal,D+1,,debit,0,100,10,3\n" +
		"03/01/2024,PJ,pix,normal,D+1,,debit,1,-5,10,3\n" +
		"03/01/2024,PF,pos,normal,D+1,nitro,credit,3.0,500,4.0,2\n"

	snapshot, err := Parse(strings.NewReader(csvData))

	s.Require().NoError(err)
	s.Equal(2, snapshot.Len())
	s.Equal(4, snapshot.SkippedRows())
	last := snapshot.Records()[1]
	s.Equal(3, last.Installments)
	s.Equal(int64(4), last.QuantityTransactions)
	s.Equal("nitro", last.NitroOrD0)
}

func (s *LoaderTestSuite) TestParse_KeepsMonthFirstDates() {
	csvData := sampleHeader +
		"12/01/2024,PJ,pix,normal,D+1,,debit,1,100,1,1\n" +
		"01/13/2024,PJ,pix,normal,D+1,,debit,1,200,2,1\n"

	snapshot, err := Parse(strings.NewReader(csvData))

	s.Require().NoError(err)
	s.Equal(2, snapshot.Len())
	s.Equal(0, snapshot.SkippedRows())
	s.Equal([]civil.Date{{Year: 2024, Month: 1, Day: 12}, {Year: 2024, Month: 1, Day: 13}}, snapshot.Days())
}

func (s *LoaderTestSuite) TestParse_MissingRequiredColumn() {
	csvData := "day,entity,product\n2024-01-02,PJ,pix\n"

	_, err := Parse(strings.NewReader(csvData))

	s.ErrorIs(err, ErrMissingColumn)
	s.Contains(err.Error(), "payment_method")
}

func (s *LoaderTestSuite) TestParse_EmptyInput() {
	_, err := Parse(strings.NewReader(""))

	s.ErrorIs(err, ErrMissingHeader)
}

func (s *LoaderTestSuite) TestParse_HeaderOnly() {
	snapshot, err := Parse(strings.NewReader(sampleHeader))

	s.Require().NoError(err)
	s.Equal(0, snapshot.Len())
	_, ok := snapshot.LatestDay()
	s.False(ok)
}

func (s *LoaderTestSuite) TestLoad_FromFile() {
	path := filepath.Join(s.T().TempDir(), "transactions.csv")
	s.Require().NoError(os.WriteFile(path, []byte(sampleHeader+"2024-01-02,PJ,pix,normal,D+1,,debit,1,10,1,1\n"), 0o600))

	snapshot, err := Load(path)

	s.Require().NoError(err)
	s.Equal(1, snapshot.Len())
}

func (s *LoaderTestSuite) TestLoad_MissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "missing.csv"))

	s.Error(err)
	s.Contains(err.Error(), "failed to open dataset")
}

func (s *LoaderTestSuite) TestCanonicalColumns() {
	columns := CanonicalColumns([]string{"\ufeffday", " Product ", "quantitu_of_merchants"})

	s.Equal(0, columns[models.ColumnDay])
	s.Equal(1, columns[models.ColumnProduct])
	s.Equal(2, columns[models.ColumnQuantityOfMerchants])
	_, misspelled := columns["quantitu_of_merchants"]
	s.False(misspelled)
}

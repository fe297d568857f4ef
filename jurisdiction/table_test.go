package jurisdiction_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/jurisdiction"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// BUILT-IN TABLE TESTS
// =============================================================================

func TestDefault_ValidatesCleanly(t *testing.T) {
	// GIVEN: The compiled-in table
	// WHEN: Building it
	// THEN: It validates (Default panics otherwise) and carries the data year

	table := jurisdiction.Default()
	assert.Equal(t, 2024, table.Version)
	require.NoError(t, table.Validate())
}

func TestDefault_CoversBothFamilies(t *testing.T) {
	// GIVEN: The compiled-in table
	// WHEN: Listing codes
	// THEN: Both families are populated; all provinces/territories present

	codes := jurisdiction.Default().Codes()
	assert.NotEmpty(t, codes[jurisdiction.FamilyUS])
	assert.Len(t, codes[jurisdiction.FamilyCA], 13)
}

func TestFamily_Dispatch(t *testing.T) {
	table := jurisdiction.Default()

	family, err := table.Family("TX")
	require.NoError(t, err)
	assert.Equal(t, jurisdiction.FamilyUS, family)

	family, err = table.Family("ON")
	require.NoError(t, err)
	assert.Equal(t, jurisdiction.FamilyCA, family)
}

func TestFamily_UnknownCode_Rejected(t *testing.T) {
	// GIVEN: A code in neither family
	// WHEN: Resolving
	// THEN: UnsupportedJurisdictionError, not a silent default

	_, err := jurisdiction.Default().Family("ZZ")
	assert.True(t, errors.Is(err, payroll.ErrUnsupportedJurisdiction))
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate_NonContiguousBrackets_Rejected(t *testing.T) {
	// GIVEN: A bracket table with a gap between ranges
	// WHEN: Validating
	// THEN: ConfigurationError naming the section

	table := jurisdiction.Default()
	table.CA.FederalBrackets = []jurisdiction.Bracket{
		{Min: decimal.Zero, Max: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.15)},
		{Min: decimal.NewFromInt(60000), Rate: decimal.NewFromFloat(0.205)},
	}

	err := table.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, payroll.ErrConfiguration))
}

func TestValidate_FirstBracketMustStartAtZero(t *testing.T) {
	table := jurisdiction.Default()
	table.CA.FederalBrackets = []jurisdiction.Bracket{
		{Min: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(0.15)},
	}
	assert.True(t, errors.Is(table.Validate(), payroll.ErrConfiguration))
}

func TestValidate_UnboundedBracketOnlyLast(t *testing.T) {
	table := jurisdiction.Default()
	table.CA.FederalBrackets = []jurisdiction.Bracket{
		{Min: decimal.Zero, Rate: decimal.NewFromFloat(0.15)},
		{Min: decimal.NewFromInt(50000), Max: decimal.NewFromInt(100000), Rate: decimal.NewFromFloat(0.205)},
	}
	assert.True(t, errors.Is(table.Validate(), payroll.ErrConfiguration))
}

func TestValidate_NegativeRate_Rejected(t *testing.T) {
	table := jurisdiction.Default()
	table.US.MedicareRate = decimal.NewFromFloat(-0.01)
	assert.True(t, errors.Is(table.Validate(), payroll.ErrConfiguration))
}

func TestValidate_MissingCPPMax_Rejected(t *testing.T) {
	table := jurisdiction.Default()
	table.CA.CPP.MaxAnnualContribution = decimal.Zero
	assert.True(t, errors.Is(table.Validate(), payroll.ErrConfiguration))
}

// =============================================================================
// BRACKET SEMANTICS
// =============================================================================

func TestBracket_Unbounded(t *testing.T) {
	assert.True(t, jurisdiction.Bracket{Min: decimal.NewFromInt(100)}.Unbounded())
	assert.False(t, jurisdiction.Bracket{Max: decimal.NewFromInt(100)}.Unbounded())
}

/*
load.go - YAML overrides for the jurisdiction table

PURPOSE:
  Tax years change annually; the engine must redeploy with an updated table
  without code changes. Load starts from the built-in defaults and overlays
  whatever the YAML file sets, then re-validates. Omitted keys keep their
  defaults, so a yearly override file only has to name what changed.

FILE FORMAT (YAML, loaded via viper):

  version: 2025
  us:
    social_security_rate: 0.062
    medicare_rate: 0.0145
    default_flat_rate: 0.22
    federal_brackets:
      single:
        - {min: 0, max: 11925, rate: 0.10}
        - {min: 11925, rate: 0.12}
    standard_deductions:
      single: 15000
    states:
      CA: {rate: 0.095}
  ca:
    federal_bpa: 16129
    federal_brackets:
      - {min: 0, max: 57375, rate: 0.15}
      - {min: 57375, rate: 0.205}
    cpp: {rate: 0.0595, max_annual_contribution: 4034.10}
    ei: {rate: 0.0164}
    provinces:
      ON: {basic_personal_amount: 12747}
*/
package jurisdiction

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/warp/payroll-engine/payroll"
)

type fileBracket struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Rate float64 `mapstructure:"rate"`
}

type fileState struct {
	Rate           *float64 `mapstructure:"rate"`
	NoIncomeTax    *bool    `mapstructure:"no_income_tax"`
	UsesAllowances *bool    `mapstructure:"uses_allowances"`
}

type fileProvince struct {
	BasicPersonalAmount *float64      `mapstructure:"basic_personal_amount"`
	Brackets            []fileBracket `mapstructure:"brackets"`
}

type fileUS struct {
	SocialSecurityRate *float64                 `mapstructure:"social_security_rate"`
	MedicareRate       *float64                 `mapstructure:"medicare_rate"`
	DefaultFlatRate    *float64                 `mapstructure:"default_flat_rate"`
	FederalBrackets    map[string][]fileBracket `mapstructure:"federal_brackets"`
	StandardDeductions map[string]float64       `mapstructure:"standard_deductions"`
	States             map[string]fileState     `mapstructure:"states"`
}

type fileCPP struct {
	Rate                  *float64 `mapstructure:"rate"`
	QuebecRate            *float64 `mapstructure:"quebec_rate"`
	BasicExemption        *float64 `mapstructure:"basic_exemption"`
	MaxAnnualContribution *float64 `mapstructure:"max_annual_contribution"`
	QuebecMaxContribution *float64 `mapstructure:"quebec_max_contribution"`
}

type fileEI struct {
	Rate             *float64 `mapstructure:"rate"`
	QuebecRate       *float64 `mapstructure:"quebec_rate"`
	MaxAnnualPremium *float64 `mapstructure:"max_annual_premium"`
	QuebecMaxPremium *float64 `mapstructure:"quebec_max_premium"`
}

type fileQPIP struct {
	Rate             *float64 `mapstructure:"rate"`
	MaxAnnualPremium *float64 `mapstructure:"max_annual_premium"`
}

type fileCA struct {
	FederalBPA      *float64                `mapstructure:"federal_bpa"`
	FederalBrackets []fileBracket           `mapstructure:"federal_brackets"`
	CPP             fileCPP                 `mapstructure:"cpp"`
	EI              fileEI                  `mapstructure:"ei"`
	QPIP            fileQPIP                `mapstructure:"qpip"`
	Provinces       map[string]fileProvince `mapstructure:"provinces"`
}

type fileTable struct {
	Version int    `mapstructure:"version"`
	US      fileUS `mapstructure:"us"`
	CA      fileCA `mapstructure:"ca"`
}

// Load reads a YAML override file and overlays it on the built-in table.
// The merged table is re-validated before being returned.
func Load(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading jurisdiction table %s: %w", path, err)
	}

	var file fileTable
	if err := v.Unmarshal(&file); err != nil {
		return nil, &payroll.ConfigurationError{Section: path, Detail: err.Error()}
	}

	table := Default()
	applyOverrides(table, file)

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func applyOverrides(table *Table, file fileTable) {
	if file.Version != 0 {
		table.Version = file.Version
	}

	setDec := func(dst *decimal.Decimal, src *float64) {
		if src != nil {
			*dst = decimal.NewFromFloat(*src)
		}
	}

	// US side.
	setDec(&table.US.SocialSecurityRate, file.US.SocialSecurityRate)
	setDec(&table.US.MedicareRate, file.US.MedicareRate)
	setDec(&table.US.DefaultFlatRate, file.US.DefaultFlatRate)
	for status, brackets := range file.US.FederalBrackets {
		table.US.FederalBrackets[payroll.FilingStatus(status)] = toBrackets(brackets)
	}
	for status, amount := range file.US.StandardDeductions {
		table.US.StandardDeductions[payroll.FilingStatus(status)] = decimal.NewFromFloat(amount)
	}
	for code, fs := range file.US.States {
		st := table.US.States[code]
		setDec(&st.Rate, fs.Rate)
		if fs.NoIncomeTax != nil {
			st.NoIncomeTax = *fs.NoIncomeTax
		}
		if fs.UsesAllowances != nil {
			st.UsesAllowances = *fs.UsesAllowances
		}
		table.US.States[code] = st
	}

	// Canada side.
	setDec(&table.CA.FederalBPA, file.CA.FederalBPA)
	if len(file.CA.FederalBrackets) > 0 {
		table.CA.FederalBrackets = toBrackets(file.CA.FederalBrackets)
	}
	setDec(&table.CA.CPP.Rate, file.CA.CPP.Rate)
	setDec(&table.CA.CPP.QuebecRate, file.CA.CPP.QuebecRate)
	setDec(&table.CA.CPP.BasicExemption, file.CA.CPP.BasicExemption)
	setDec(&table.CA.CPP.MaxAnnualContribution, file.CA.CPP.MaxAnnualContribution)
	setDec(&table.CA.CPP.QuebecMaxContribution, file.CA.CPP.QuebecMaxContribution)
	setDec(&table.CA.EI.Rate, file.CA.EI.Rate)
	setDec(&table.CA.EI.QuebecRate, file.CA.EI.QuebecRate)
	setDec(&table.CA.EI.MaxAnnualPremium, file.CA.EI.MaxAnnualPremium)
	setDec(&table.CA.EI.QuebecMaxPremium, file.CA.EI.QuebecMaxPremium)
	setDec(&table.CA.QPIP.Rate, file.CA.QPIP.Rate)
	setDec(&table.CA.QPIP.MaxAnnualPremium, file.CA.QPIP.MaxAnnualPremium)
	for code, fp := range file.CA.Provinces {
		prov := table.CA.Provinces[code]
		if fp.BasicPersonalAmount != nil {
			prov.BasicPersonalAmount = decimal.NewFromFloat(*fp.BasicPersonalAmount)
		}
		if len(fp.Brackets) > 0 {
			prov.Brackets = toBrackets(fp.Brackets)
		}
		table.CA.Provinces[code] = prov
	}
}

func toBrackets(in []fileBracket) []Bracket {
	out := make([]Bracket, len(in))
	for i, b := range in {
		out[i] = Bracket{
			Min:  decimal.NewFromFloat(b.Min),
			Max:  decimal.NewFromFloat(b.Max),
			Rate: decimal.NewFromFloat(b.Rate),
		}
	}
	return out
}

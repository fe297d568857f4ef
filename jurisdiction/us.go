package jurisdiction

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// d parses static rate/threshold data; panics on typos, which is the right
// failure mode for compiled-in constants.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// =============================================================================
// US TABLE DATA - 2024 tax year
// =============================================================================

func defaultUS() USTable {
	return USTable{
		SocialSecurityRate: d("0.062"),
		MedicareRate:       d("0.0145"),
		DefaultFlatRate:    d("0.22"),
		AllowanceAmount:    d("2500"),

		FederalBrackets: map[payroll.FilingStatus][]Bracket{
			payroll.FilingSingle: {
				{Min: d("0"), Max: d("11600"), Rate: d("0.10")},
				{Min: d("11600"), Max: d("47150"), Rate: d("0.12")},
				{Min: d("47150"), Max: d("100525"), Rate: d("0.22")},
				{Min: d("100525"), Max: d("191950"), Rate: d("0.24")},
				{Min: d("191950"), Max: d("243725"), Rate: d("0.32")},
				{Min: d("243725"), Max: d("609350"), Rate: d("0.35")},
				{Min: d("609350"), Rate: d("0.37")},
			},
			payroll.FilingMarried: {
				{Min: d("0"), Max: d("23200"), Rate: d("0.10")},
				{Min: d("23200"), Max: d("94300"), Rate: d("0.12")},
				{Min: d("94300"), Max: d("201050"), Rate: d("0.22")},
				{Min: d("201050"), Max: d("383900"), Rate: d("0.24")},
				{Min: d("383900"), Max: d("487450"), Rate: d("0.32")},
				{Min: d("487450"), Max: d("731200"), Rate: d("0.35")},
				{Min: d("731200"), Rate: d("0.37")},
			},
			payroll.FilingHeadOfHousehold: {
				{Min: d("0"), Max: d("16550"), Rate: d("0.10")},
				{Min: d("16550"), Max: d("63100"), Rate: d("0.12")},
				{Min: d("63100"), Max: d("100500"), Rate: d("0.22")},
				{Min: d("100500"), Max: d("191950"), Rate: d("0.24")},
				{Min: d("191950"), Max: d("243700"), Rate: d("0.32")},
				{Min: d("243700"), Max: d("609350"), Rate: d("0.35")},
				{Min: d("609350"), Rate: d("0.37")},
			},
		},

		StandardDeductions: map[payroll.FilingStatus]decimal.Decimal{
			payroll.FilingSingle:          d("14600"),
			payroll.FilingMarried:         d("29200"),
			payroll.FilingHeadOfHousehold: d("21900"),
		},

		States: usStates(),
	}
}

// usStates returns per-state approximate flat rates. These are deliberately
// coarse: the engine is a best-effort approximation consuming whatever the
// table supplies, not a model of each state's real bracket structure.
func usStates() map[string]StateTax {
	noTax := func(name string) StateTax {
		return StateTax{Name: name, NoIncomeTax: true}
	}
	flat := func(name, rate string) StateTax {
		return StateTax{Name: name, Rate: d(rate)}
	}
	withAllowances := func(name, rate string) StateTax {
		return StateTax{Name: name, Rate: d(rate), UsesAllowances: true}
	}

	states := map[string]StateTax{
		// No state income tax.
		"AK": noTax("Alaska"),
		"FL": noTax("Florida"),
		"NV": noTax("Nevada"),
		"NH": noTax("New Hampshire"),
		"SD": noTax("South Dakota"),
		"TN": noTax("Tennessee"),
		"TX": noTax("Texas"),
		"WA": noTax("Washington"),
		"WY": noTax("Wyoming"),

		// Allowance-based withholding states.
		"CA": withAllowances("California", "0.093"),
		"NY": withAllowances("New York", "0.0685"),
		"GA": withAllowances("Georgia", "0.0549"),
		"VA": withAllowances("Virginia", "0.0575"),

		// Flat/approximate rates.
		"AL": flat("Alabama", "0.05"),
		"AR": flat("Arkansas", "0.044"),
		"AZ": flat("Arizona", "0.025"),
		"CO": flat("Colorado", "0.044"),
		"CT": flat("Connecticut", "0.055"),
		"DC": flat("District of Columbia", "0.0650"),
		"DE": flat("Delaware", "0.0555"),
		"HI": flat("Hawaii", "0.0790"),
		"IA": flat("Iowa", "0.057"),
		"ID": flat("Idaho", "0.058"),
		"IL": flat("Illinois", "0.0495"),
		"IN": flat("Indiana", "0.0305"),
		"KS": flat("Kansas", "0.057"),
		"KY": flat("Kentucky", "0.04"),
		"LA": flat("Louisiana", "0.0425"),
		"MA": flat("Massachusetts", "0.05"),
		"MD": flat("Maryland", "0.0475"),
		"ME": flat("Maine", "0.0715"),
		"MI": flat("Michigan", "0.0425"),
		"MN": flat("Minnesota", "0.068"),
		"MO": flat("Missouri", "0.048"),
		"MS": flat("Mississippi", "0.047"),
		"MT": flat("Montana", "0.059"),
		"NC": flat("North Carolina", "0.045"),
		"ND": flat("North Dakota", "0.0225"),
		"NE": flat("Nebraska", "0.0584"),
		"NJ": flat("New Jersey", "0.0637"),
		"NM": flat("New Mexico", "0.049"),
		"OH": flat("Ohio", "0.035"),
		"OK": flat("Oklahoma", "0.0475"),
		"OR": flat("Oregon", "0.0875"),
		"PA": flat("Pennsylvania", "0.0307"),
		"RI": flat("Rhode Island", "0.0475"),
		"SC": flat("South Carolina", "0.064"),
		"UT": flat("Utah", "0.0465"),
		"VT": flat("Vermont", "0.066"),
		"WI": flat("Wisconsin", "0.053"),
		"WV": flat("West Virginia", "0.0512"),
	}

	// Local tax is opt-in and only honored where the state allows it.
	ny := states["NY"]
	ny.AllowsLocalTax = true
	ny.LocalRates = map[string]decimal.Decimal{
		"new york city": d("0.03078"),
		"yonkers":       d("0.016750"),
	}
	states["NY"] = ny

	pa := states["PA"]
	pa.AllowsLocalTax = true
	pa.LocalRates = map[string]decimal.Decimal{
		"philadelphia": d("0.0375"),
		"pittsburgh":   d("0.03"),
	}
	states["PA"] = pa

	md := states["MD"]
	md.AllowsLocalTax = true
	md.LocalRates = map[string]decimal.Decimal{
		"baltimore": d("0.032"),
	}
	states["MD"] = md

	oh := states["OH"]
	oh.AllowsLocalTax = true
	oh.LocalRates = map[string]decimal.Decimal{
		"columbus":   d("0.025"),
		"cleveland":  d("0.025"),
		"cincinnati": d("0.018"),
	}
	states["OH"] = oh

	return states
}

package jurisdiction

// =============================================================================
// CANADA TABLE DATA - 2024 tax year
// =============================================================================

func defaultCA() CATable {
	return CATable{
		FederalBrackets: []Bracket{
			{Min: d("0"), Max: d("55867"), Rate: d("0.15")},
			{Min: d("55867"), Max: d("111733"), Rate: d("0.205")},
			{Min: d("111733"), Max: d("173205"), Rate: d("0.26")},
			{Min: d("173205"), Max: d("246752"), Rate: d("0.29")},
			{Min: d("246752"), Rate: d("0.33")},
		},
		FederalBPA: d("15705"),

		FederalAllowanceAmount:    d("2500"),
		ProvincialAllowanceAmount: d("2000"),

		FederalMarriedCredit:      d("2000"),
		ProvincialMarriedCredit:   d("1200"),
		FederalSeparatedCredit:    d("1000"),
		ProvincialSeparatedCredit: d("600"),

		CPP: CPPConfig{
			Rate:                  d("0.0595"),
			QuebecRate:            d("0.064"),
			BasicExemption:        d("3500"),
			MaxAnnualContribution: d("3867.50"),
			QuebecMaxContribution: d("4160.00"),
		},
		EI: EIConfig{
			Rate:             d("0.0164"),
			QuebecRate:       d("0.0132"),
			MaxAnnualPremium: d("1049.12"),
			QuebecMaxPremium: d("834.24"),
		},
		QPIP: QPIPConfig{
			Rate:             d("0.00494"),
			MaxAnnualPremium: d("464.36"),
		},

		Provinces: caProvinces(),
	}
}

func caProvinces() map[string]ProvinceTax {
	b := func(min, max, rate string) Bracket {
		if max == "" {
			return Bracket{Min: d(min), Rate: d(rate)}
		}
		return Bracket{Min: d(min), Max: d(max), Rate: d(rate)}
	}

	return map[string]ProvinceTax{
		"ON": {
			Name: "Ontario",
			Brackets: []Bracket{
				b("0", "51446", "0.0505"),
				b("51446", "102894", "0.0915"),
				b("102894", "150000", "0.1116"),
				b("150000", "220000", "0.1216"),
				b("220000", "", "0.1316"),
			},
			BasicPersonalAmount: d("12399"),
		},
		"QC": {
			Name: "Quebec",
			Brackets: []Bracket{
				b("0", "51780", "0.14"),
				b("51780", "103545", "0.19"),
				b("103545", "126000", "0.24"),
				b("126000", "", "0.2575"),
			},
			BasicPersonalAmount: d("18056"),
		},
		"BC": {
			Name: "British Columbia",
			Brackets: []Bracket{
				b("0", "47937", "0.0506"),
				b("47937", "95875", "0.077"),
				b("95875", "110076", "0.105"),
				b("110076", "133664", "0.1229"),
				b("133664", "181232", "0.147"),
				b("181232", "252752", "0.168"),
				b("252752", "", "0.205"),
			},
			BasicPersonalAmount: d("12580"),
		},
		"AB": {
			Name: "Alberta",
			Brackets: []Bracket{
				b("0", "148269", "0.10"),
				b("148269", "177922", "0.12"),
				b("177922", "237230", "0.13"),
				b("237230", "355845", "0.14"),
				b("355845", "", "0.15"),
			},
			BasicPersonalAmount: d("21885"),
		},
		"MB": {
			Name: "Manitoba",
			Brackets: []Bracket{
				b("0", "47000", "0.108"),
				b("47000", "100000", "0.1275"),
				b("100000", "", "0.174"),
			},
			BasicPersonalAmount: d("15780"),
		},
		"SK": {
			Name: "Saskatchewan",
			Brackets: []Bracket{
				b("0", "52057", "0.105"),
				b("52057", "148734", "0.125"),
				b("148734", "", "0.145"),
			},
			BasicPersonalAmount: d("18491"),
		},
		"NS": {
			Name: "Nova Scotia",
			Brackets: []Bracket{
				b("0", "29590", "0.0879"),
				b("29590", "59180", "0.1495"),
				b("59180", "93000", "0.1667"),
				b("93000", "150000", "0.175"),
				b("150000", "", "0.21"),
			},
			BasicPersonalAmount: d("8481"),
		},
		"NB": {
			Name: "New Brunswick",
			Brackets: []Bracket{
				b("0", "49958", "0.094"),
				b("49958", "99916", "0.14"),
				b("99916", "185064", "0.16"),
				b("185064", "", "0.195"),
			},
			BasicPersonalAmount: d("13044"),
		},
		"NL": {
			Name: "Newfoundland and Labrador",
			Brackets: []Bracket{
				b("0", "43198", "0.087"),
				b("43198", "86395", "0.145"),
				b("86395", "154244", "0.158"),
				b("154244", "215943", "0.178"),
				b("215943", "", "0.198"),
			},
			BasicPersonalAmount: d("10818"),
		},
		"PE": {
			Name: "Prince Edward Island",
			Brackets: []Bracket{
				b("0", "32656", "0.0965"),
				b("32656", "64313", "0.1363"),
				b("64313", "105000", "0.1665"),
				b("105000", "", "0.18"),
			},
			BasicPersonalAmount: d("13500"),
		},
		"YT": {
			Name: "Yukon",
			Brackets: []Bracket{
				b("0", "55867", "0.064"),
				b("55867", "111733", "0.09"),
				b("111733", "173205", "0.109"),
				b("173205", "500000", "0.128"),
				b("500000", "", "0.15"),
			},
			BasicPersonalAmount: d("15705"),
		},
		"NT": {
			Name: "Northwest Territories",
			Brackets: []Bracket{
				b("0", "50597", "0.059"),
				b("50597", "101198", "0.086"),
				b("101198", "164525", "0.122"),
				b("164525", "", "0.1405"),
			},
			BasicPersonalAmount: d("17373"),
		},
		"NU": {
			Name: "Nunavut",
			Brackets: []Bracket{
				b("0", "53268", "0.04"),
				b("53268", "106537", "0.07"),
				b("106537", "173205", "0.09"),
				b("173205", "", "0.115"),
			},
			BasicPersonalAmount: d("18767"),
		},
	}
}

// Default returns the built-in table for the current data year, validated.
// Panics on an invalid built-in table (a compile-time data bug, not a
// runtime condition).
func Default() *Table {
	t := &Table{
		Version: 2024,
		US:      defaultUS(),
		CA:      defaultCA(),
	}
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

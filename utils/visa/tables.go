package visa

// countryDemonyms maps lowercase country names and common abbreviations to the
// nationality written on visas.
var countryDemonyms = map[string]string{
	// Middle East
	"uae":                  "Emirati",
	"emirates":             "Emirati",
	"united arab emirates": "Emirati",
	"saudi arabia":         "Saudi",
	"ksa":                  "Saudi",
	"saudi":                "Saudi",
	"qatar":                "Qatari",
	"kuwait":               "Kuwaiti",
	"bahrain":              "Bahraini",
	"oman":                 "Omani",
	"yemen":                "Yemeni",
	"jordan":               "Jordanian",
	"lebanon":              "Lebanese",
	"syria":                "Syrian",
	"iraq":                 "Iraqi",
	"iran":                 "Iranian",
	"palestine":            "Palestinian",
	"israel":               "Israeli",
	"turkey":               "Turkish",
	"turkiye":              "Turkish",
	"cyprus":               "Cypriot",

	// Africa
	"egypt":        "Egyptian",
	"morocco":      "Moroccan",
	"algeria":      "Algerian",
	"tunisia":      "Tunisian",
	"libya":        "Libyan",
	"sudan":        "Sudanese",
	"south sudan":  "South Sudanese",
	"ethiopia":     "Ethiopian",
	"eritrea":      "Eritrean",
	"somalia":      "Somali",
	"djibouti":     "Djiboutian",
	"kenya":        "Kenyan",
	"uganda":       "Ugandan",
	"tanzania":     "Tanzanian",
	"rwanda":       "Rwandan",
	"burundi":      "Burundian",
	"nigeria":      "Nigerian",
	"ghana":        "Ghanaian",
	"senegal":      "Senegalese",
	"mali":         "Malian",
	"niger":        "Nigerien",
	"chad":         "Chadian",
	"cameroon":     "Cameroonian",
	"ivory coast":  "Ivorian",
	"cote divoire": "Ivorian",
	"guinea":       "Guinean",
	"sierra leone": "Sierra Leonean",
	"liberia":      "Liberian",
	"togo":         "Togolese",
	"benin":        "Beninese",
	"gambia":       "Gambian",
	"mauritania":   "Mauritanian",
	"south africa": "South African",
	"zimbabwe":     "Zimbabwean",
	"zambia":       "Zambian",
	"malawi":       "Malawian",
	"mozambique":   "Mozambican",
	"madagascar":   "Malagasy",
	"mauritius":    "Mauritian",
	"angola":       "Angolan",
	"namibia":      "Namibian",
	"botswana":     "Botswanan",
	"congo":        "Congolese",
	"gabon":        "Gabonese",
	"comoros":      "Comorian",

	// Asia
	"india":        "Indian",
	"pakistan":     "Pakistani",
	"bangladesh":   "Bangladeshi",
	"sri lanka":    "Sri Lankan",
	"nepal":        "Nepalese",
	"bhutan":       "Bhutanese",
	"afghanistan":  "Afghan",
	"philippines":  "Filipino",
	"indonesia":    "Indonesian",
	"malaysia":     "Malaysian",
	"singapore":    "Singaporean",
	"thailand":     "Thai",
	"vietnam":      "Vietnamese",
	"cambodia":     "Cambodian",
	"laos":         "Laotian",
	"myanmar":      "Burmese",
	"china":        "Chinese",
	"japan":        "Japanese",
	"korea":        "Korean",
	"south korea":  "South Korean",
	"north korea":  "North Korean",
	"mongolia":     "Mongolian",
	"maldives":     "Maldivian",
	"kazakhstan":   "Kazakh",
	"uzbekistan":   "Uzbek",
	"kyrgyzstan":   "Kyrgyz",
	"tajikistan":   "Tajik",
	"turkmenistan": "Turkmen",
	"azerbaijan":   "Azerbaijani",
	"armenia":      "Armenian",
	"georgia":      "Georgian",

	// Europe
	"united kingdom": "British",
	"uk":             "British",
	"great britain":  "British",
	"britain":        "British",
	"england":        "British",
	"ireland":        "Irish",
	"france":         "French",
	"germany":        "German",
	"italy":          "Italian",
	"spain":          "Spanish",
	"portugal":       "Portuguese",
	"netherlands":    "Dutch",
	"holland":        "Dutch",
	"belgium":        "Belgian",
	"switzerland":    "Swiss",
	"austria":        "Austrian",
	"sweden":         "Swedish",
	"norway":         "Norwegian",
	"denmark":        "Danish",
	"finland":        "Finnish",
	"iceland":        "Icelandic",
	"poland":         "Polish",
	"czech republic": "Czech",
	"slovakia":       "Slovak",
	"hungary":        "Hungarian",
	"romania":        "Romanian",
	"bulgaria":       "Bulgarian",
	"greece":         "Greek",
	"serbia":         "Serbian",
	"croatia":        "Croatian",
	"bosnia":         "Bosnian",
	"albania":        "Albanian",
	"ukraine":        "Ukrainian",
	"belarus":        "Belarusian",
	"russia":         "Russian",
	"moldova":        "Moldovan",
	"lithuania":      "Lithuanian",
	"latvia":         "Latvian",
	"estonia":        "Estonian",

	// Americas
	"united states": "American",
	"usa":           "American",
	"america":       "American",
	"canada":        "Canadian",
	"mexico":        "Mexican",
	"brazil":        "Brazilian",
	"argentina":     "Argentinian",
	"colombia":      "Colombian",
	"venezuela":     "Venezuelan",
	"peru":          "Peruvian",
	"chile":         "Chilean",
	"ecuador":       "Ecuadorian",
	"bolivia":       "Bolivian",
	"paraguay":      "Paraguayan",
	"uruguay":       "Uruguayan",
	"cuba":          "Cuban",
	"jamaica":       "Jamaican",

	// Oceania
	"australia":        "Australian",
	"new zealand":      "New Zealander",
	"fiji":             "Fijian",
	"papua new guinea": "Papua New Guinean",
}

// extraDemonyms are nationality words accepted as-is that are not values of
// countryDemonyms.
var extraDemonyms = []string{
	"Emirian", "Arab", "Arabian", "Philippine", "Pinoy", "Srilankan", "Nepali",
	"English", "Scottish", "Welsh", "Argentine", "Kiwi", "Somalian",
}

// basicCountryDemonyms is the small table consulted when only a line
// mentioning "nationality" or "country" is available.
var basicCountryDemonyms = map[string]string{
	"india":       "Indian",
	"pakistan":    "Pakistani",
	"bangladesh":  "Bangladeshi",
	"philippines": "Filipino",
	"egypt":       "Egyptian",
	"morocco":     "Moroccan",
	"jordan":      "Jordanian",
	"syria":       "Syrian",
	"lebanon":     "Lebanese",
	"nepal":       "Nepalese",
	"uae":         "Emirati",
	"uk":          "British",
	"usa":         "American",
	"china":       "Chinese",
	"nigeria":     "Nigerian",
	"kenya":       "Kenyan",
}

// issuingStateWords name the issuing state printed on every UAE document;
// they are only used as a nationality when nothing else matches.
var issuingStateWords = map[string]bool{
	"uae":                  true,
	"emirates":             true,
	"united arab emirates": true,
}

// nameStopWords exclude a two-word line from being read as a person's name.
var nameStopWords = toSet(
	"visa", "passport", "emirates", "residence", "permit", "card", "number",
	"date", "issue", "expiry", "nationality", "profession", "birth", "gender",
	"status", "marital", "sponsor", "entry", "employment", "united", "arab",
	"government", "ministry", "authority", "federal", "identity", "dubai",
	"abu", "dhabi", "sharjah", "ajman", "labour", "labor", "work", "file",
	"place", "signature", "male", "female", "single", "married", "salary",
	"company", "establishment", "issued", "valid", "republic", "kingdom",
	"state", "states", "citizenship", "immigration", "residency", "tourist",
	"visit", "transit", "holder", "name", "surname", "given",
	// Nationalities and demonyms.
	"indian", "pakistani", "bangladeshi", "filipino", "philippine",
	"egyptian", "moroccan", "jordanian", "syrian", "lebanese", "nepalese",
	"nepali", "sri", "lankan", "emirati", "saudi", "qatari", "kuwaiti",
	"omani", "bahraini", "yemeni", "iraqi", "iranian", "palestinian",
	"sudanese", "ethiopian", "kenyan", "ugandan", "nigerian", "ghanaian",
	"british", "american", "canadian", "french", "german", "italian",
	"spanish", "russian", "ukrainian", "chinese", "indonesian",
	"malaysian", "thai", "vietnamese", "afghan", "turkish", "tunisian",
	"algerian", "libyan", "somali", "eritrean", "cameroonian", "african",
	"india", "pakistan", "bangladesh", "philippines", "egypt", "morocco",
	"jordan", "syria", "lebanon", "nepal", "lanka", "arabia",
)

// nameLineStopWords are short label words that disqualify a name line.
var nameLineStopWords = toSet(
	"type", "class", "category", "valid", "until", "from", "to", "no", "ref",
	"id", "code",
)

// firstLinesStopWords is the smaller exclusion set for the early-lines scan.
var firstLinesStopWords = toSet(
	"visa", "passport", "emirates", "united", "arab", "residence", "permit",
	"entry", "government", "dubai", "card", "identity", "ministry", "state",
)

// labelWords end a captured value run: the next label starts there.
var labelWords = toSet(
	"name", "nationality", "sponsor", "profession", "occupation", "salary",
	"passport", "visa", "date", "issue", "issued", "expiry", "expires",
	"place", "birth", "gender", "sex", "status", "marital", "emirates", "eid",
	"labor", "labour", "card", "number", "no", "file", "uid", "type", "valid",
	"until", "position", "designation", "employer", "residence", "permit",
	"country", "citizenship", "religion", "address", "mobile", "phone",
	"dob", "accompanied", "by", "job", "title",
)

// jobTitles are matched literally when no labeled profession exists.
var jobTitles = []string{
	"Sales Representative", "Sales Executive", "Sales Manager",
	"Project Manager", "Operations Manager", "General Manager",
	"Marketing Manager", "Office Manager", "Restaurant Manager",
	"Software Engineer", "Civil Engineer", "Mechanical Engineer",
	"Electrical Engineer", "Site Engineer",
	"Accountant", "Administrative Assistant", "Personal Assistant",
	"Receptionist", "Secretary", "Cashier", "Storekeeper",
	"Heavy Truck Driver", "Light Vehicle Driver", "Driver",
	"Security Guard", "Cleaner", "Housemaid", "Domestic Worker",
	"Cook", "Chef", "Waiter", "Barista",
	"Electrician", "Plumber", "Carpenter", "Mason", "Welder", "Painter",
	"Technician", "Mechanic", "Labourer", "Laborer",
	"Nurse", "Doctor", "Pharmacist", "Teacher",
	"Business Development Manager", "Customer Service Representative",
	"Investor", "Partner",
}

// maritalStatuses maps accepted marital words to their canonical form.
var maritalStatuses = map[string]string{
	"single":    "Single",
	"married":   "Married",
	"divorced":  "Divorced",
	"widowed":   "Widowed",
	"widow":     "Widowed",
	"separated": "Separated",
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

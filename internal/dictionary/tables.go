package dictionary

// Built-in production tables. Skewed toward the Nordic market the product
// targets, with enough global entries to keep international results usable.
var defaultConfig = Config{
	Companies: []Company{
		{Name: "Klarna", SaaS: true},
		{Name: "Spotify", SaaS: true},
		{Name: "iZettle", SaaS: true},
		{Name: "Tink", SaaS: true},
		{Name: "Trustly", SaaS: true},
		{Name: "Epidemic Sound", SaaS: true},
		{Name: "Funnel", SaaS: true},
		{Name: "Mentimeter", SaaS: true},
		{Name: "Kognity", SaaS: true},
		{Name: "Sana Labs", SaaS: true},
		{Name: "Voyado", SaaS: true},
		{Name: "Upsales", SaaS: true},
		{Name: "Lime Technologies", SaaS: true},
		{Name: "Fortnox", SaaS: true},
		{Name: "Visma", SaaS: true},
		{Name: "Salesforce", SaaS: true},
		{Name: "HubSpot", SaaS: true},
		{Name: "Oracle", SaaS: false},
		{Name: "Microsoft", SaaS: true},
		{Name: "Google", SaaS: true},
		{Name: "Amazon", SaaS: false},
		{Name: "SAP", SaaS: true},
		{Name: "IBM", SaaS: false},
		{Name: "Ericsson", SaaS: false},
		{Name: "Telia", SaaS: false},
		{Name: "Telenor", SaaS: false},
		{Name: "Volvo", SaaS: false},
		{Name: "Scania", SaaS: false},
		{Name: "H&M", SaaS: false},
		{Name: "IKEA", SaaS: false},
		{Name: "Electrolux", SaaS: false},
		{Name: "Securitas", SaaS: false},
		{Name: "Skanska", SaaS: false},
		{Name: "SEB", SaaS: false},
		{Name: "Swedbank", SaaS: false},
		{Name: "Handelsbanken", SaaS: false},
		{Name: "Nordea", SaaS: false},
		{Name: "DNB", SaaS: false},
		{Name: "Schibsted", SaaS: false},
		{Name: "Adevinta", SaaS: true},
		{Name: "Kahoot", SaaS: true},
		{Name: "Cognite", SaaS: true},
		{Name: "Pleo", SaaS: true},
		{Name: "Zendesk", SaaS: true},
		{Name: "Pipedrive", SaaS: true},
	},
	NonCompanyBlacklist: []string{
		// site and page boilerplate
		"linkedin", "profile", "profiles", "view", "connections", "followers",
		"experience", "contact", "posts", "activity", "www", "http", "https",
		// generic words that open snippets
		"about", "summary", "skills", "work", "career", "jobs", "member",
		"professional", "people", "team", "community", "network",
		// education
		"university", "universitet", "college", "school", "skola", "högskola",
		"institute", "academy", "education", "utbildning", "student", "alumni",
		// process words
		"recruiting", "recruitment", "rekrytering", "hiring", "interview",
		"application", "apply",
		// locations caught by the location extractor instead
		"sweden", "sverige", "norway", "norge", "denmark", "danmark",
		"finland", "stockholm", "gothenburg", "göteborg", "malmö", "oslo",
		"copenhagen", "köpenhamn", "helsinki", "nordic", "scandinavia",
		"greater", "area", "region",
	},
	Cities: []string{
		"Stockholm", "Gothenburg", "Göteborg", "Malmö", "Uppsala", "Lund",
		"Linköping", "Örebro", "Västerås", "Helsingborg", "Jönköping",
		"Umeå", "Norrköping", "Oslo", "Bergen", "Trondheim", "Stavanger",
		"Copenhagen", "København", "Aarhus", "Odense", "Helsinki", "Espoo",
		"Tampere", "London", "Berlin", "Munich", "Amsterdam", "Paris",
		"Dublin", "New York", "San Francisco", "Boston", "Austin",
	},
	Countries: []string{
		"Sweden", "Sverige", "Norway", "Norge", "Denmark", "Danmark",
		"Finland", "Iceland", "Germany", "Netherlands", "United Kingdom",
		"England", "Ireland", "France", "Spain", "United States", "USA",
	},
	Regions: []string{
		"Scandinavia", "Nordics", "Skåne", "Västra Götaland", "Mälardalen",
		"Greater Stockholm", "Stockholm County", "Oslo Area", "Bay Area",
		"Benelux", "DACH", "EMEA",
	},
	SwedishCities: []string{
		"Stockholm", "Gothenburg", "Göteborg", "Malmö", "Uppsala", "Lund",
		"Linköping", "Örebro", "Västerås", "Helsingborg", "Jönköping",
		"Umeå", "Norrköping",
	},
	IndustryTerms: []string{
		"saas", "software", "fintech", "edtech", "medtech", "healthtech",
		"e-commerce", "ecommerce", "retail", "telecom", "banking", "finance",
		"insurance", "logistics", "manufacturing", "consulting", "gaming",
		"media", "marketing", "advertising", "hospitality", "automotive",
		"construction", "energy", "pharma", "biotech",
	},
	ShortCompanyAllowlist: []string{
		"IBM", "SAP", "H&M", "EY", "SEB", "ICA", "DNB", "UBS", "AWS", "DHL",
		"KPMG", "PwC", "3M", "EQT",
	},
	JobTitlePatterns: []string{
		`\b(manager|director|head|chief|lead|senior|junior|principal)\b`,
		`\b(executive|officer|president|vp|vice president)\b`,
		`\b(engineer|developer|architect|designer|analyst|scientist)\b`,
		`\b(consultant|specialist|coordinator|administrator|advisor)\b`,
		`\b(representative|associate|assistant|intern|trainee)\b`,
		`\b(account executive|account manager|sales rep|bdr|sdr)\b`,
		`\b(founder|co-founder|owner|partner|ceo|cto|cfo|coo|cmo|cro)\b`,
		`\b(chef|säljare|utvecklare|konsult|ansvarig|ledare|rådgivare)\b`,
		`\b(selger|sælger|leder|utvikler|rådgiver)\b`,
		`\b(recruiter|rekryterare|talent)\b`,
	},
	LocationPatterns: []string{
		`(?:based in|located in|location:|bosatt i|baserad i)\s+([\p{L}][\p{L} ,-]+)`,
		`(?:lives in|living in|bor i)\s+([\p{L}][\p{L} ,-]+)`,
	},
	SalesRoleTitles: []string{
		"account executive", "account manager", "sales manager",
		"sales representative", "sales rep", "sales director", "sales lead",
		"business development", "bdr", "sdr", "key account", "säljare",
		"säljchef", "försäljningschef", "selger", "sælger",
		"customer success", "partner manager", "commercial manager",
	},
	SalesActivityTerms: []string{
		"quota", "pipeline", "prospecting", "closing deals", "cold calling",
		"outbound", "inbound sales", "b2b sales", "new business",
		"försäljning", "nykundsbearbetning", "budget responsibility",
		"revenue target", "upselling", "cross-selling", "crm",
	},
	SaaSIndicatorTerms: []string{
		"saas", "software as a service", "cloud platform", "cloud-based",
		"b2b software", "subscription software", "tech company", "startup",
		"scale-up", "scaleup", "platform company", "software company",
		"mjukvara", "molntjänst",
	},
	SalesSynonyms: []Synonym{
		{Term: "sales", Locale: "en"},
		{Term: "säljare", Locale: "sv"},
		{Term: "försäljning", Locale: "sv"},
		{Term: "salg", Locale: "no"},
		{Term: "selger", Locale: "no"},
		{Term: "sælger", Locale: "da"},
	},
	SaaSSynonyms: []Synonym{
		{Term: "saas", Locale: "en"},
		{Term: "software as a service", Locale: "en"},
		{Term: "mjukvara som tjänst", Locale: "sv"},
		{Term: "molntjänst", Locale: "sv"},
	},
	FallbackSurnames: []string{
		"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson",
		"Larsson", "Olsson", "Persson", "Svensson", "Gustafsson",
	},
}

package hts

// primaryRows is the first manual curation pass over the tariff schedule,
// grouped by chapter. Rates are the column 1 general rates as printed;
// pct is the numeric fraction used for landed-cost math downstream. For
// per-unit (non-ad-valorem) rates pct is a placeholder approximation, not a
// unit conversion; the rate string is the source of truth.
var primaryRows = []rateRow{
	// Chapter 4: dairy produce, honey
	{"0402.10.05", "Milk powder, fat content not exceeding 1.5 percent", "0.87¢/kg", 0.0087, "kg"},
	{"0405.10.10", "Butter, subject to quota", "12.3¢/kg", 0.123, "kg"},
	{"0406.10.04", "Fresh (unripened) cheese, including whey cheese and curd", "10%", 0.10, "kg"},
	{"0406.20.10", "Roquefort cheese, grated or powdered", "8%", 0.08, "kg"},
	{"0406.30.05", "Processed cheese, not grated or powdered", "10%", 0.10, "kg"},
	{"0406.40.44", "Blue-veined cheese, other than Roquefort or Stilton", "12.8%", 0.128, "kg"},
	{"0409.00.00", "Natural honey", "1.9¢/kg", 0.019, "kg"},

	// Chapter 39: plastics
	{"3926.20.90", "Articles of apparel and clothing accessories, of plastics", "5%", 0.05, "doz."},

	// Chapter 42: leather goods, handbags
	{"4202.22.81", "Handbags with outer surface of textile materials, of man-made fibers", "17.6%", 0.176, "No."},
	{"4202.92.31", "Travel, sports and similar bags, of man-made fibers", "17.6%", 0.176, "No."},

	// Chapter 61: knitted or crocheted apparel
	{"6103.42.10", "Men's or boys' trousers and shorts, knitted, of cotton", "16.1%", 0.161, "doz. kg"},
	{"6104.62.20", "Women's or girls' trousers and shorts, knitted, of cotton", "14.9%", 0.149, "doz. kg"},
	{"6109.10.00", "T-shirts, singlets and tank tops, knitted, of cotton", "16.5%", 0.165, "doz. kg"},
	{"6110.20.20", "Sweaters, pullovers and similar articles, knitted, of cotton", "16.5%", 0.165, "doz. kg"},
	{"6115.95.90", "Hosiery, knitted, of cotton, other", "13.5%", 0.135, "doz. kg"},

	// Chapter 62: woven apparel
	{"6203.42.45", "Men's or boys' trousers and shorts, of cotton, not knitted", "16.6%", 0.166, "doz. kg"},
	{"6204.62.80", "Women's or girls' trousers and shorts, of cotton, not knitted", "16.6%", 0.166, "doz. kg"},
	{"6205.20.20", "Men's or boys' shirts, of cotton, not knitted", "19.7%", 0.197, "doz. kg"},
	{"6217.10.95", "Other made up clothing accessories, not knitted", "14.6%", 0.146, "kg"},

	// Chapter 64: footwear
	{"6402.99.31", "Footwear with outer soles and uppers of rubber or plastics, other", "6%", 0.06, "prs."},
	{"6403.99.60", "Footwear with leather uppers, for men, other", "8.5%", 0.085, "prs."},
	{"6404.11.90", "Sports footwear with textile uppers, valued over $12/pair", "20%", 0.20, "prs."},

	// Chapter 71: jewelry
	{"7113.19.50", "Articles of jewelry, of precious metal other than silver", "5.5%", 0.055, "X"},

	// Chapter 85: electrical machinery and equipment
	{"8504.40.95", "Static converters, other", "Free", 0, "No."},
	{"8517.12.00", "Telephones for cellular networks (smartphones)", "Free", 0, "No."},
	{"8518.30.00", "Headphones and earphones, whether or not combined with a microphone", "Free", 0, "No."},
	{"8528.72.64", "Color television reception apparatus, other", "5%", 0.05, "No."},
	{"8544.42.90", "Insulated electric conductors fitted with connectors, other", "2.6%", 0.026, "kg"},

	// Chapter 90: optical instruments
	{"9004.10.00", "Sunglasses, corrective, protective or other", "2%", 0.02, "doz."},

	// Chapter 95: toys, games, sports equipment
	{"9503.00.00", "Tricycles, scooters, dolls, puzzles and similar toys", "Free", 0, "No."},
	{"9504.50.00", "Video game consoles and machines", "Free", 0, "No."},
	{"9506.62.40", "Inflatable balls other than footballs and soccer balls", "4.8%", 0.048, "No."},
}

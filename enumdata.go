package qlocalexml

// The vocabulary tables below assign the stable numeric identity codes
// used to key the locale database. Ids are part of the output contract:
// never renumber an existing entry, only append.

type enumEntry struct {
	Name string
	Code string
}

var languageList = map[int]enumEntry{
	0:   {"AnyLanguage", " "},
	1:   {"C", " "},
	2:   {"Abkhazian", "ab"},
	3:   {"Afar", "aa"},
	4:   {"Afrikaans", "af"},
	5:   {"Akan", "ak"},
	6:   {"Albanian", "sq"},
	7:   {"Amharic", "am"},
	8:   {"Arabic", "ar"},
	9:   {"Armenian", "hy"},
	10:  {"Assamese", "as"},
	11:  {"Aymara", "ay"},
	12:  {"Azerbaijani", "az"},
	13:  {"Bambara", "bm"},
	14:  {"Bashkir", "ba"},
	15:  {"Basque", "eu"},
	16:  {"Belarusian", "be"},
	17:  {"Bengali", "bn"},
	18:  {"Bosnian", "bs"},
	19:  {"Breton", "br"},
	20:  {"Bulgarian", "bg"},
	21:  {"Burmese", "my"},
	22:  {"Catalan", "ca"},
	23:  {"Cherokee", "chr"},
	24:  {"Chinese", "zh"},
	25:  {"Cornish", "kw"},
	26:  {"Corsican", "co"},
	27:  {"Croatian", "hr"},
	28:  {"Czech", "cs"},
	29:  {"Danish", "da"},
	30:  {"Dutch", "nl"},
	31:  {"Dzongkha", "dz"},
	32:  {"English", "en"},
	33:  {"Esperanto", "eo"},
	34:  {"Estonian", "et"},
	35:  {"Ewe", "ee"},
	36:  {"Faroese", "fo"},
	37:  {"Filipino", "fil"},
	38:  {"Finnish", "fi"},
	39:  {"French", "fr"},
	40:  {"Fulah", "ff"},
	41:  {"Gaelic", "gd"},
	42:  {"Galician", "gl"},
	43:  {"Ganda", "lg"},
	44:  {"Georgian", "ka"},
	45:  {"German", "de"},
	46:  {"Greek", "el"},
	47:  {"Guarani", "gn"},
	48:  {"Gujarati", "gu"},
	49:  {"Hausa", "ha"},
	50:  {"Hebrew", "he"},
	51:  {"Hindi", "hi"},
	52:  {"Hungarian", "hu"},
	53:  {"Icelandic", "is"},
	54:  {"Igbo", "ig"},
	55:  {"Indonesian", "id"},
	56:  {"Irish", "ga"},
	57:  {"Italian", "it"},
	58:  {"Japanese", "ja"},
	59:  {"Javanese", "jv"},
	60:  {"Kannada", "kn"},
	61:  {"Kashmiri", "ks"},
	62:  {"Kazakh", "kk"},
	63:  {"Khmer", "km"},
	64:  {"Kikuyu", "ki"},
	65:  {"Kinyarwanda", "rw"},
	66:  {"Korean", "ko"},
	67:  {"Kurdish", "ku"},
	68:  {"Kyrgyz", "ky"},
	69:  {"Lao", "lo"},
	70:  {"Latin", "la"},
	71:  {"Latvian", "lv"},
	72:  {"Lingala", "ln"},
	73:  {"Lithuanian", "lt"},
	74:  {"Luxembourgish", "lb"},
	75:  {"Macedonian", "mk"},
	76:  {"Malagasy", "mg"},
	77:  {"Malay", "ms"},
	78:  {"Malayalam", "ml"},
	79:  {"Maltese", "mt"},
	80:  {"Maori", "mi"},
	81:  {"Marathi", "mr"},
	82:  {"Mongolian", "mn"},
	83:  {"Nepali", "ne"},
	84:  {"NorthernSami", "se"},
	85:  {"NorwegianBokmal", "nb"},
	86:  {"NorwegianNynorsk", "nn"},
	87:  {"Occitan", "oc"},
	88:  {"Odia", "or"},
	89:  {"Oromo", "om"},
	90:  {"Pashto", "ps"},
	91:  {"Persian", "fa"},
	92:  {"Polish", "pl"},
	93:  {"Portuguese", "pt"},
	94:  {"Punjabi", "pa"},
	95:  {"Quechua", "qu"},
	96:  {"Romanian", "ro"},
	97:  {"Romansh", "rm"},
	98:  {"Rundi", "rn"},
	99:  {"Russian", "ru"},
	100: {"Sango", "sg"},
	101: {"Sanskrit", "sa"},
	102: {"Serbian", "sr"},
	103: {"Shona", "sn"},
	104: {"Sindhi", "sd"},
	105: {"Sinhala", "si"},
	106: {"Slovak", "sk"},
	107: {"Slovenian", "sl"},
	108: {"Somali", "so"},
	109: {"Spanish", "es"},
	110: {"Swahili", "sw"},
	111: {"Swedish", "sv"},
	112: {"Tajik", "tg"},
	113: {"Tamil", "ta"},
	114: {"Tatar", "tt"},
	115: {"Telugu", "te"},
	116: {"Thai", "th"},
	117: {"Tibetan", "bo"},
	118: {"Tigrinya", "ti"},
	119: {"Tongan", "to"},
	120: {"Turkish", "tr"},
	121: {"Turkmen", "tk"},
	122: {"Ukrainian", "uk"},
	123: {"Urdu", "ur"},
	124: {"Uyghur", "ug"},
	125: {"Uzbek", "uz"},
	126: {"Vietnamese", "vi"},
	127: {"Welsh", "cy"},
	128: {"WesternFrisian", "fy"},
	129: {"Wolof", "wo"},
	130: {"Xhosa", "xh"},
	131: {"Yiddish", "yi"},
	132: {"Yoruba", "yo"},
	133: {"Zulu", "zu"},
}

var scriptList = map[int]enumEntry{
	0:  {"AnyScript", " "},
	1:  {"ArabicScript", "Arab"},
	2:  {"ArmenianScript", "Armn"},
	3:  {"BengaliScript", "Beng"},
	4:  {"CherokeeScript", "Cher"},
	5:  {"CyrillicScript", "Cyrl"},
	6:  {"DevanagariScript", "Deva"},
	7:  {"EthiopicScript", "Ethi"},
	8:  {"GeorgianScript", "Geor"},
	9:  {"GreekScript", "Grek"},
	10: {"GujaratiScript", "Gujr"},
	11: {"GurmukhiScript", "Guru"},
	12: {"HanScript", "Hani"},
	13: {"SimplifiedHanScript", "Hans"},
	14: {"TraditionalHanScript", "Hant"},
	15: {"HebrewScript", "Hebr"},
	16: {"JapaneseScript", "Jpan"},
	17: {"KannadaScript", "Knda"},
	18: {"KhmerScript", "Khmr"},
	19: {"KoreanScript", "Kore"},
	20: {"LaoScript", "Laoo"},
	21: {"LatinScript", "Latn"},
	22: {"MalayalamScript", "Mlym"},
	23: {"MongolianScript", "Mong"},
	24: {"MyanmarScript", "Mymr"},
	25: {"OdiaScript", "Orya"},
	26: {"SinhalaScript", "Sinh"},
	27: {"SyriacScript", "Syrc"},
	28: {"TamilScript", "Taml"},
	29: {"TeluguScript", "Telu"},
	30: {"ThaanaScript", "Thaa"},
	31: {"ThaiScript", "Thai"},
	32: {"TibetanScript", "Tibt"},
	33: {"TifinaghScript", "Tfng"},
	34: {"VaiScript", "Vaii"},
	35: {"AdlamScript", "Adlm"},
}

var countryList = map[int]enumEntry{
	0:   {"AnyCountry", " "},
	1:   {"Afghanistan", "AF"},
	2:   {"Albania", "AL"},
	3:   {"Algeria", "DZ"},
	4:   {"Andorra", "AD"},
	5:   {"Angola", "AO"},
	6:   {"Argentina", "AR"},
	7:   {"Armenia", "AM"},
	8:   {"Australia", "AU"},
	9:   {"Austria", "AT"},
	10:  {"Azerbaijan", "AZ"},
	11:  {"Bahrain", "BH"},
	12:  {"Bangladesh", "BD"},
	13:  {"Belarus", "BY"},
	14:  {"Belgium", "BE"},
	15:  {"Benin", "BJ"},
	16:  {"Bolivia", "BO"},
	17:  {"BosniaAndHerzegovina", "BA"},
	18:  {"Botswana", "BW"},
	19:  {"Brazil", "BR"},
	20:  {"Brunei", "BN"},
	21:  {"Bulgaria", "BG"},
	22:  {"BurkinaFaso", "BF"},
	23:  {"Burundi", "BI"},
	24:  {"Cambodia", "KH"},
	25:  {"Cameroon", "CM"},
	26:  {"Canada", "CA"},
	27:  {"CapeVerde", "CV"},
	28:  {"CentralAfricanRepublic", "CF"},
	29:  {"Chad", "TD"},
	30:  {"Chile", "CL"},
	31:  {"China", "CN"},
	32:  {"Colombia", "CO"},
	33:  {"CongoBrazzaville", "CG"},
	34:  {"CongoKinshasa", "CD"},
	35:  {"CostaRica", "CR"},
	36:  {"Croatia", "HR"},
	37:  {"Cuba", "CU"},
	38:  {"Cyprus", "CY"},
	39:  {"Czechia", "CZ"},
	40:  {"Denmark", "DK"},
	41:  {"Djibouti", "DJ"},
	42:  {"DominicanRepublic", "DO"},
	43:  {"Ecuador", "EC"},
	44:  {"Egypt", "EG"},
	45:  {"ElSalvador", "SV"},
	46:  {"Eritrea", "ER"},
	47:  {"Estonia", "EE"},
	48:  {"Ethiopia", "ET"},
	49:  {"Faroe", "FO"},
	50:  {"Finland", "FI"},
	51:  {"France", "FR"},
	52:  {"Gabon", "GA"},
	53:  {"Gambia", "GM"},
	54:  {"Georgia", "GE"},
	55:  {"Germany", "DE"},
	56:  {"Ghana", "GH"},
	57:  {"Greece", "GR"},
	58:  {"Greenland", "GL"},
	59:  {"Guatemala", "GT"},
	60:  {"Guinea", "GN"},
	61:  {"GuineaBissau", "GW"},
	62:  {"Haiti", "HT"},
	63:  {"Honduras", "HN"},
	64:  {"HongKong", "HK"},
	65:  {"Hungary", "HU"},
	66:  {"Iceland", "IS"},
	67:  {"India", "IN"},
	68:  {"Indonesia", "ID"},
	69:  {"Iran", "IR"},
	70:  {"Iraq", "IQ"},
	71:  {"Ireland", "IE"},
	72:  {"Israel", "IL"},
	73:  {"Italy", "IT"},
	74:  {"IvoryCoast", "CI"},
	75:  {"Jamaica", "JM"},
	76:  {"Japan", "JP"},
	77:  {"Jordan", "JO"},
	78:  {"Kazakhstan", "KZ"},
	79:  {"Kenya", "KE"},
	80:  {"Kosovo", "XK"},
	81:  {"Kuwait", "KW"},
	82:  {"Kyrgyzstan", "KG"},
	83:  {"Laos", "LA"},
	84:  {"Latvia", "LV"},
	85:  {"Lebanon", "LB"},
	86:  {"Lesotho", "LS"},
	87:  {"Liberia", "LR"},
	88:  {"Libya", "LY"},
	89:  {"Liechtenstein", "LI"},
	90:  {"Lithuania", "LT"},
	91:  {"Luxembourg", "LU"},
	92:  {"Macao", "MO"},
	93:  {"Macedonia", "MK"},
	94:  {"Madagascar", "MG"},
	95:  {"Malawi", "MW"},
	96:  {"Malaysia", "MY"},
	97:  {"Maldives", "MV"},
	98:  {"Mali", "ML"},
	99:  {"Malta", "MT"},
	100: {"Mauritania", "MR"},
	101: {"Mauritius", "MU"},
	102: {"Mexico", "MX"},
	103: {"Moldova", "MD"},
	104: {"Monaco", "MC"},
	105: {"Mongolia", "MN"},
	106: {"Montenegro", "ME"},
	107: {"Morocco", "MA"},
	108: {"Mozambique", "MZ"},
	109: {"Myanmar", "MM"},
	110: {"Namibia", "NA"},
	111: {"Nepal", "NP"},
	112: {"Netherlands", "NL"},
	113: {"NewZealand", "NZ"},
	114: {"Nicaragua", "NI"},
	115: {"Niger", "NE"},
	116: {"Nigeria", "NG"},
	117: {"NorthKorea", "KP"},
	118: {"Norway", "NO"},
	119: {"Oman", "OM"},
	120: {"Pakistan", "PK"},
	121: {"Panama", "PA"},
	122: {"PapuaNewGuinea", "PG"},
	123: {"Paraguay", "PY"},
	124: {"Peru", "PE"},
	125: {"Philippines", "PH"},
	126: {"Poland", "PL"},
	127: {"Portugal", "PT"},
	128: {"PuertoRico", "PR"},
	129: {"Qatar", "QA"},
	130: {"Romania", "RO"},
	131: {"Russia", "RU"},
	132: {"Rwanda", "RW"},
	133: {"SaudiArabia", "SA"},
	134: {"Senegal", "SN"},
	135: {"Serbia", "RS"},
	136: {"SierraLeone", "SL"},
	137: {"Singapore", "SG"},
	138: {"Slovakia", "SK"},
	139: {"Slovenia", "SI"},
	140: {"Somalia", "SO"},
	141: {"SouthAfrica", "ZA"},
	142: {"SouthKorea", "KR"},
	143: {"SouthSudan", "SS"},
	144: {"Spain", "ES"},
	145: {"SriLanka", "LK"},
	146: {"Sudan", "SD"},
	147: {"Sweden", "SE"},
	148: {"Switzerland", "CH"},
	149: {"Syria", "SY"},
	150: {"Taiwan", "TW"},
	151: {"Tajikistan", "TJ"},
	152: {"Tanzania", "TZ"},
	153: {"Thailand", "TH"},
	154: {"Togo", "TG"},
	155: {"TrinidadAndTobago", "TT"},
	156: {"Tunisia", "TN"},
	157: {"Turkey", "TR"},
	158: {"Turkmenistan", "TM"},
	159: {"Uganda", "UG"},
	160: {"Ukraine", "UA"},
	161: {"UnitedArabEmirates", "AE"},
	162: {"UnitedKingdom", "GB"},
	163: {"UnitedStates", "US"},
	164: {"Uruguay", "UY"},
	165: {"Uzbekistan", "UZ"},
	166: {"Vatican", "VA"},
	167: {"Venezuela", "VE"},
	168: {"Vietnam", "VN"},
	169: {"Yemen", "YE"},
	170: {"Zambia", "ZM"},
	171: {"Zimbabwe", "ZW"},
}

var languageCodeToID = map[string]int{}
var scriptCodeToID = map[string]int{}
var countryCodeToID = map[string]int{}

func init() {
	for id, e := range languageList {
		languageCodeToID[e.Code] = id
	}
	for id, e := range scriptList {
		scriptCodeToID[e.Code] = id
	}
	for id, e := range countryList {
		countryCodeToID[e.Code] = id
	}
	// Id 0 and 1 both carry the blank code; the blank code must map to
	// the Any* entry.
	languageCodeToID[" "] = 0
	languageCodeToID[""] = 0
	scriptCodeToID[""] = 0
	countryCodeToID[""] = 0
}

func languageCodeToId(code string) int {
	if id, ok := languageCodeToID[code]; ok {
		return id
	}
	return -1
}

func scriptCodeToId(code string) int {
	if id, ok := scriptCodeToID[code]; ok {
		return id
	}
	return -1
}

func countryCodeToId(code string) int {
	if id, ok := countryCodeToID[code]; ok {
		return id
	}
	return -1
}

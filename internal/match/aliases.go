package match

import "strings"

// Alias maps are many-to-many: a canonical form owns several aliases and an
// alias can belong to several canonical forms. Expansion is always
// bidirectional and every expansion is tried, so ties resolve as a similarity
// upper bound rather than a picked canonical value.

// nicknameAliases maps canonical given names to nicknames and common
// international or transliterated variants.
var nicknameAliases = map[string][]string{
	"robert":      {"bob", "rob", "bobby", "robbie", "bert"},
	"william":     {"bill", "will", "billy", "willy", "liam"},
	"richard":     {"rick", "dick", "richie", "ricky"},
	"james":       {"jim", "jimmy", "jamie"},
	"john":        {"jack", "johnny", "jon"},
	"michael":     {"mike", "mikey", "mick", "mikhail"},
	"christopher": {"chris", "topher", "kit"},
	"joseph":      {"joe", "joey", "jose"},
	"thomas":      {"tom", "tommy"},
	"charles":     {"charlie", "chuck", "chas", "carlos"},
	"daniel":      {"dan", "danny"},
	"matthew":     {"matt", "matty"},
	"anthony":     {"tony", "ant", "antonio"},
	"donald":      {"don", "donnie"},
	"steven":      {"steve", "stevie", "stephen"},
	"andrew":      {"andy", "drew", "andrei"},
	"kenneth":     {"ken", "kenny"},
	"joshua":      {"josh"},
	"kevin":       {"kev"},
	"edward":      {"ed", "eddie", "ted", "ned", "eduardo"},
	"ronald":      {"ron", "ronnie"},
	"timothy":     {"tim", "timmy"},
	"jason":       {"jay"},
	"jeffrey":     {"jeff"},
	"gregory":     {"greg"},
	"benjamin":    {"ben", "benny", "benji"},
	"samuel":      {"sam", "sammy"},
	"alexander":   {"alex", "al", "sasha", "alejandro", "alexei"},
	"nicholas":    {"nick", "nicky", "nikolai", "nico"},
	"jonathan":    {"jon", "jonny", "johnathan"},
	"patrick":     {"pat", "paddy"},
	"peter":       {"pete", "pyotr", "pedro"},
	"lawrence":    {"larry"},
	"gerald":      {"jerry", "gerry"},
	"frederick":   {"fred", "freddie"},
	"raymond":     {"ray"},
	"dennis":      {"denny", "denis"},
	"walter":      {"walt", "wally"},
	"henry":       {"hank", "harry", "enrique"},
	"arthur":      {"art", "artie"},
	"abigail":     {"abby", "gail"},
	"elizabeth":   {"liz", "beth", "betty", "betsy", "eliza", "lizzie", "elisabeth"},
	"margaret":    {"maggie", "meg", "peggy", "marge", "greta"},
	"katherine":   {"kate", "kathy", "katie", "kat", "kitty", "catherine", "katya"},
	"jennifer":    {"jen", "jenny"},
	"jessica":     {"jess", "jessie"},
	"patricia":    {"pat", "patty", "tricia", "trish"},
	"barbara":     {"barb", "barbie"},
	"susan":       {"sue", "susie", "suzanne"},
	"deborah":     {"deb", "debbie", "debra"},
	"michelle":    {"shelly", "mich"},
	"kimberly":    {"kim", "kimmy"},
	"stephanie":   {"steph"},
	"rebecca":     {"becky", "becca"},
	"cynthia":     {"cindy"},
	"kathleen":    {"kathy", "katie"},
	"amanda":      {"mandy", "amy"},
	"melissa":     {"mel", "missy", "lissa"},
	"christina":   {"chris", "tina", "christy", "kristina"},
	"victoria":    {"vicky", "tori", "viktoria"},
	"alexandra":   {"alex", "sasha", "lexi", "sandra"},
	"natalia":     {"natasha", "nat", "natalie"},
	"anastasia":   {"ana", "stacy", "nastya"},
	"gabriella":   {"gabby", "ella", "gabriela"},
	"isabella":    {"bella", "izzy", "isabel"},
	"samantha":    {"sam", "sammy"},
	"danielle":    {"dani"},
	"nicole":      {"nikki", "nicky"},
	"veronica":    {"ronnie", "vero"},
	"valentina":   {"val", "tina"},
	"mohammed":    {"muhammad", "mohamed", "mohammad", "muhammed"},
	"yusuf":       {"yousef", "youssef", "joseph"},
	"sergei":      {"sergey", "serge"},
	"dmitri":      {"dmitry", "dima", "dimitri"},
	"evgeny":      {"eugene", "zhenya", "evgeni"},
	"ivan":        {"vanya", "john"},
	"guillermo":   {"william", "memo"},
	"juan":        {"john"},
	"giovanni":    {"john", "gianni"},
	"wei":         {"david"},
	"xiaoming":    {"ming"},
}

// emailDomainTypos maps well-known mail domains to frequently observed
// misspellings.
var emailDomainTypos = map[string][]string{
	"gmail.com": {
		"gmial.com", "gmal.com", "gamil.com", "gnail.com", "gmail.co",
		"gmaill.com", "gmail.cm", "gmail.con", "gmai.com",
	},
	"yahoo.com": {
		"yaho.com", "yahooo.com", "yhoo.com", "yahoo.co", "yahoo.cm",
		"yahoo.con",
	},
	"hotmail.com": {
		"hotmial.com", "hotmal.com", "hotmail.co", "hotmali.com",
		"hotmail.con", "hormail.com",
	},
	"outlook.com": {
		"outlok.com", "outloook.com", "outlook.co", "outlook.con",
		"oulook.com",
	},
	"icloud.com": {
		"iclod.com", "icloud.co", "icoud.com",
	},
	"aol.com": {
		"ao.com", "aol.co", "aoll.com",
	},
}

// countryCallingCodes holds ITU country calling codes, longest first so
// greedy prefix stripping never cuts a shorter code out of a longer one.
var countryCallingCodes = []string{
	"998", "996", "995", "994", "993", "992", "977", "975", "976", "974",
	"973", "972", "971", "968", "967", "966", "965", "964", "963", "962",
	"961", "960", "886", "880", "856", "855", "853", "852", "692", "691",
	"690", "689", "688", "687", "686", "685", "683", "682", "681", "680",
	"679", "678", "677", "676", "675", "674", "673", "672", "670", "599",
	"598", "597", "595", "593", "592", "591", "590", "509", "508", "507",
	"506", "505", "504", "503", "502", "501", "500", "423", "421", "420",
	"389", "387", "386", "385", "383", "382", "381", "380", "379", "378",
	"377", "376", "375", "374", "373", "372", "371", "370", "359", "358",
	"357", "356", "355", "354", "353", "352", "351", "350", "299", "298",
	"297", "291", "290", "269", "268", "267", "266", "265", "264", "263",
	"262", "261", "260", "258", "257", "256", "255", "254", "253", "252",
	"251", "250", "249", "248", "246", "245", "244", "243", "242", "241",
	"240", "239", "238", "237", "236", "235", "234", "233", "232", "231",
	"230", "229", "228", "227", "226", "225", "224", "223", "222", "221",
	"220", "218", "216", "213", "212", "211", "98", "95", "94", "93",
	"92", "91", "90", "86", "84", "82", "81", "66", "65", "64", "63",
	"62", "61", "60", "58", "57", "56", "55", "54", "53", "52", "51",
	"49", "48", "47", "46", "45", "44", "43", "41", "40", "39", "36",
	"34", "33", "32", "31", "30", "27", "20", "7", "1",
}

// cityAliases maps canonical city names to abbreviations and colloquial or
// renamed forms.
var cityAliases = map[string][]string{
	"new york":         {"nyc", "new york city", "manhattan", "ny"},
	"los angeles":      {"la", "l.a.", "los angeles county"},
	"san francisco":    {"sf", "san fran", "frisco"},
	"philadelphia":     {"philly"},
	"las vegas":        {"vegas"},
	"chicago":          {"chi-town", "chitown"},
	"washington":       {"dc", "washington dc", "d.c."},
	"new orleans":      {"nola"},
	"atlanta":          {"atl"},
	"fort worth":       {"ft worth", "ft. worth"},
	"fort lauderdale":  {"ft lauderdale", "ft. lauderdale"},
	"saint louis":      {"st louis", "st. louis", "stl"},
	"saint paul":       {"st paul", "st. paul"},
	"salt lake city":   {"slc", "salt lake"},
	"san antonio":      {"sa"},
	"oklahoma city":    {"okc"},
	"kansas city":      {"kc"},
	"mumbai":           {"bombay"},
	"kolkata":          {"calcutta"},
	"chennai":          {"madras"},
	"bengaluru":        {"bangalore", "blr"},
	"beijing":          {"peking"},
	"guangzhou":        {"canton"},
	"saint petersburg": {"st petersburg", "st. petersburg", "leningrad"},
	"ho chi minh city": {"saigon", "hcmc"},
	"yangon":           {"rangoon"},
	"chernihiv":        {"chernigov"},
	"kyiv":             {"kiev"},
}

// reverse indexes built once at init; alias lookup must be O(1) both ways.
var (
	nicknameReverse = reverseIndex(nicknameAliases)
	domainReverse   = reverseIndex(emailDomainTypos)
	cityReverse     = reverseIndex(cityAliases)
)

func reverseIndex(forward map[string][]string) map[string][]string {
	rev := make(map[string][]string)
	for canonical, aliases := range forward {
		for _, alias := range aliases {
			rev[alias] = append(rev[alias], canonical)
		}
	}
	return rev
}

// expandToken returns the token plus every alias reachable in one hop,
// canonical to alias and alias to canonical.
func expandToken(token string, forward, reverse map[string][]string) []string {
	out := []string{token}
	seen := map[string]bool{token: true}
	add := func(words []string) {
		for _, w := range words {
			w = strings.ToLower(w)
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	add(forward[token])
	add(reverse[token])
	return out
}

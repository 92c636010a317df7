package fields

import "strings"

// Dictionaries is the read-only reference data the field heuristics score
// against. Loaded once at process start and shared without locking; never
// mutated afterwards.
type Dictionaries struct {
	FirstNames         map[string]bool
	LastNames          map[string]bool
	JobTitleWords      map[string]bool
	SectionKeywords    map[string]bool
	PlaceNames         map[string]bool
	LocationIndicators []string
	SkillCategories    map[string][]string
	NoiseWords         map[string]bool
}

// Default returns the built-in dictionaries.
func Default() *Dictionaries {
	return &Dictionaries{
		FirstNames:         toSet(firstNames),
		LastNames:          toSet(lastNames),
		JobTitleWords:      toSet(jobTitleWords),
		SectionKeywords:    toSet(sectionKeywords),
		PlaceNames:         toSet(placeNames),
		LocationIndicators: locationIndicators,
		SkillCategories:    skillCategories,
		NoiseWords:         toSet(noiseWords),
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

var firstNames = []string{
	"james", "john", "robert", "michael", "william", "david", "richard",
	"joseph", "thomas", "charles", "christopher", "daniel", "matthew",
	"anthony", "mark", "donald", "steven", "paul", "andrew", "joshua",
	"kenneth", "kevin", "brian", "george", "timothy", "ronald", "edward",
	"jason", "jeffrey", "ryan", "jacob", "gary", "nicholas", "eric",
	"jonathan", "stephen", "larry", "justin", "scott", "brandon", "benjamin",
	"samuel", "gregory", "alexander", "patrick", "frank", "raymond", "jack",
	"dennis", "jerry", "tyler", "aaron", "jose", "adam", "nathan", "henry",
	"peter", "carl", "arthur", "mary", "patricia", "jennifer", "linda",
	"elizabeth", "barbara", "susan", "jessica", "sarah", "karen", "lisa",
	"nancy", "betty", "sandra", "margaret", "ashley", "kimberly", "emily",
	"donna", "michelle", "carol", "amanda", "melissa", "deborah", "stephanie",
	"rebecca", "sharon", "laura", "cynthia", "amy", "kathleen", "angela",
	"shirley", "brenda", "emma", "anna", "pamela", "nicole", "samantha",
	"katherine", "christine", "helen", "debra", "rachel", "carolyn", "janet",
	"maria", "olivia", "heather", "diane", "julie", "victoria", "kelly",
	"christina", "joan", "lauren", "judith", "megan", "andrea", "cheryl",
	"hannah", "jacqueline", "martha", "gloria", "teresa", "ann", "sara",
	"madison", "juan", "luis", "carlos", "miguel", "ahmed", "mohammed",
	"ali", "omar", "chen", "wei", "ming", "raj", "priya", "amit", "sanjay",
	"ivan", "dmitri", "olga", "natasha", "pierre", "marie", "hans", "klaus",
}

var lastNames = []string{
	"smith", "johnson", "williams", "brown", "jones", "garcia", "miller",
	"davis", "rodriguez", "martinez", "hernandez", "lopez", "gonzalez",
	"wilson", "anderson", "thomas", "taylor", "moore", "jackson", "martin",
	"lee", "perez", "thompson", "white", "harris", "sanchez", "clark",
	"ramirez", "lewis", "robinson", "walker", "young", "allen", "king",
	"wright", "scott", "torres", "nguyen", "hill", "flores", "green",
	"adams", "nelson", "baker", "hall", "rivera", "campbell", "mitchell",
	"carter", "roberts", "gomez", "phillips", "evans", "turner", "diaz",
	"parker", "cruz", "edwards", "collins", "reyes", "stewart", "morris",
	"morales", "murphy", "cook", "rogers", "gutierrez", "ortiz", "morgan",
	"cooper", "peterson", "bailey", "reed", "kelly", "howard", "ramos",
	"kim", "cox", "ward", "richardson", "watson", "brooks", "chavez",
	"wood", "james", "bennett", "gray", "mendoza", "ruiz", "hughes",
	"price", "alvarez", "castillo", "sanders", "patel", "myers", "long",
	"ross", "foster", "jimenez", "powell", "jenkins", "perry", "russell",
	"sullivan", "bell", "coleman", "butler", "henderson", "barnes",
	"fisher", "vasquez", "simmons", "wang", "li", "zhang", "liu", "singh",
	"kumar", "shah", "khan", "ahmed", "ali", "ivanov", "petrov", "muller",
	"schmidt", "fischer", "weber", "rossi", "ferrari", "silva", "santos",
}

var jobTitleWords = []string{
	"engineer", "developer", "manager", "director", "analyst", "consultant",
	"specialist", "coordinator", "administrator", "assistant", "associate",
	"supervisor", "executive", "officer", "designer", "architect", "lead",
	"senior", "junior", "intern", "technician", "programmer", "scientist",
	"accountant", "nurse", "teacher", "professor", "chef", "cook", "server",
	"cashier", "clerk", "driver", "operator", "mechanic", "electrician",
	"plumber", "carpenter", "welder", "recruiter", "salesperson", "agent",
	"representative", "receptionist", "bartender", "barista", "stylist",
	"therapist", "pharmacist", "paralegal", "attorney", "lawyer",
}

var sectionKeywords = []string{
	"resume", "curriculum", "vitae", "summary", "objective", "profile",
	"experience", "education", "skills", "certifications", "projects",
	"references", "employment", "history", "qualifications", "achievements",
	"awards", "languages", "interests", "volunteer", "publications",
	"professional", "technical", "work", "contact", "about", "overview",
}

var placeNames = []string{
	"new york", "los angeles", "chicago", "houston", "phoenix",
	"philadelphia", "san antonio", "san diego", "dallas", "san jose",
	"austin", "jacksonville", "fort worth", "columbus", "charlotte",
	"san francisco", "indianapolis", "seattle", "denver", "boston",
	"nashville", "detroit", "portland", "memphis", "oklahoma", "vegas",
	"louisville", "baltimore", "milwaukee", "albuquerque", "tucson",
	"fresno", "sacramento", "mesa", "atlanta", "omaha", "raleigh", "miami",
	"cleveland", "tulsa", "oakland", "minneapolis", "wichita", "arlington",
	"tampa", "orlando", "pittsburgh", "cincinnati", "alabama", "alaska",
	"arizona", "arkansas", "california", "colorado", "connecticut",
	"delaware", "florida", "georgia", "hawaii", "idaho", "illinois",
	"indiana", "iowa", "kansas", "kentucky", "louisiana", "maine",
	"maryland", "massachusetts", "michigan", "minnesota", "mississippi",
	"missouri", "montana", "nebraska", "nevada", "ohio", "oregon",
	"pennsylvania", "tennessee", "texas", "utah", "vermont", "virginia",
	"washington", "wisconsin", "wyoming", "toronto", "vancouver", "london",
	"manchester", "dublin", "paris", "berlin", "munich", "madrid",
	"barcelona", "rome", "milan", "amsterdam", "sydney", "melbourne",
	"auckland", "tokyo", "osaka", "seoul", "beijing", "shanghai", "mumbai",
	"delhi", "bangalore", "hyderabad", "chennai", "singapore", "dubai",
	"mexico", "canada", "england", "france", "germany", "spain", "italy",
	"india", "china", "japan", "australia", "brazil", "argentina",
}

// locationIndicators gate location-pattern matches: a comma-separated
// candidate is only accepted when it contains one of these substrings.
var locationIndicators = []string{
	" al", " ak", " az", " ar", " ca", " co", " ct", " de", " fl", " ga",
	" hi", " id", " il", " in", " ia", " ks", " ky", " la", " me", " md",
	" ma", " mi", " mn", " ms", " mo", " mt", " ne", " nv", " nh", " nj",
	" nm", " ny", " nc", " nd", " oh", " ok", " or", " pa", " ri", " sc",
	" sd", " tn", " tx", " ut", " vt", " va", " wa", " wv", " wi", " wy",
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"hampshire", "jersey", "mexico", "york", "carolina", "dakota", "ohio",
	"oklahoma", "oregon", "pennsylvania", "island", "tennessee", "texas",
	"utah", "vermont", "virginia", "washington", "wisconsin", "wyoming",
	"canada", "england", "london", "toronto", "vancouver", "sydney",
	"ontario", "quebec", "alberta", "columbia",
}

var skillCategories = map[string][]string{
	"programming": {
		"javascript", "typescript", "python", "java", "golang", " go ",
		"c++", "c#", "ruby", "php", "swift", "kotlin", "rust", "scala",
		"html", "css", "react", "angular", "vue", "node.js", "django",
		"flask", "spring", "rails", ".net", "graphql", "rest api",
	},
	"databases": {
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"oracle", "sqlite", "cassandra", "elasticsearch", "dynamodb",
	},
	"cloud_devops": {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "jenkins", "ci/cd", "ansible", "linux", "git",
		"devops", "microservices", "serverless", "cloudformation",
	},
	"office": {
		"microsoft office", "excel", "word", "powerpoint", "outlook",
		"google workspace", "quickbooks", "salesforce", "sap", "tableau",
		"power bi", "jira", "confluence", "slack", "data entry",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"time management", "project management", "customer service",
		"critical thinking", "collaboration", "organization", "mentoring",
		"negotiation", "public speaking", "conflict resolution",
	},
	"culinary": {
		"food preparation", "food safety", "menu planning", "baking",
		"grilling", "line cook", "knife skills", "servsafe", "catering",
		"inventory management", "kitchen management",
	},
	"healthcare": {
		"patient care", "phlebotomy", "cpr", "first aid", "medical records",
		"hipaa", "vital signs", "nursing", "medication administration",
		"medical terminology", "ehr", "epic",
	},
	"education": {
		"lesson planning", "classroom management", "curriculum development",
		"tutoring", "special education", "esl", "student assessment",
	},
	"finance": {
		"accounting", "bookkeeping", "financial analysis", "budgeting",
		"forecasting", "accounts payable", "accounts receivable", "payroll",
		"auditing", "tax preparation", "financial reporting", "gaap",
	},
	"retail": {
		"point of sale", "pos", "merchandising", "loss prevention",
		"cash handling", "upselling", "stocking", "visual merchandising",
	},
}

// noiseWords are capitalized standalone words that look like skills or names
// but are neither.
var noiseWords = []string{
	"the", "and", "for", "with", "from", "this", "that", "have", "will",
	"resume", "email", "phone", "address", "summary", "objective",
	"experience", "education", "skills", "references", "january",
	"february", "march", "april", "may", "june", "july", "august",
	"september", "october", "november", "december", "monday", "tuesday",
	"wednesday", "thursday", "friday", "present", "current", "company",
	"inc", "llc", "university", "college", "school", "street", "avenue",
}

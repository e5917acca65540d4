package evaluation

// genreLexicons maps an essay genre to the terminology the scorer
// rewards. Lookup is case-insensitive; unknown genres fall back to
// defaultLexicon.
var genreLexicons = map[string][]string{
	"polity": {
		"constitution", "parliament", "judiciary", "federalism", "amendment",
		"fundamental", "rights", "directive", "legislature", "executive",
		"governance", "democracy", "separation", "accountability",
	},
	"economy": {
		"gdp", "inflation", "fiscal", "monetary", "deficit", "subsidy",
		"taxation", "investment", "employment", "growth", "reform",
		"liberalisation", "budget", "trade",
	},
	"society": {
		"caste", "gender", "urbanisation", "migration", "poverty",
		"inequality", "education", "health", "welfare", "demographic",
		"empowerment", "inclusion", "community", "social",
	},
	"environment": {
		"climate", "biodiversity", "conservation", "emission", "pollution",
		"sustainable", "ecosystem", "renewable", "forest", "mitigation",
		"adaptation", "carbon", "wildlife", "degradation",
	},
	"ethics": {
		"integrity", "probity", "accountability", "impartiality", "empathy",
		"conscience", "virtue", "duty", "transparency", "objectivity",
		"compassion", "fortitude", "tolerance", "dedication",
	},
	"science": {
		"technology", "innovation", "research", "digital", "artificial",
		"biotechnology", "space", "nuclear", "vaccine", "data",
		"computing", "satellite", "genome", "quantum",
	},
}

// defaultLexicon rewards general analytic vocabulary when the genre is
// unknown or unspecified.
var defaultLexicon = []string{
	"however", "therefore", "furthermore", "consequently", "moreover",
	"analysis", "perspective", "evidence", "argument", "significant",
	"critical", "context", "implication", "challenge",
}

// lexiconFor returns the lexicon for a genre.
func lexiconFor(genre string) []string {
	if lex, ok := genreLexicons[genre]; ok {
		return lex
	}
	return defaultLexicon
}

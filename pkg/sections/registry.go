package sections

// Canonical section names. Arbitrary resume header phrasings are
// normalized to exactly one of these.
const (
	ContactInformation = "contact information"
	Summary            = "summary"
	Objective          = "objective"
	Experience         = "experience"
	Education          = "education"
	Skills             = "skills"
	Projects           = "projects"
	Certifications     = "certifications"
)

// registryEntry maps a canonical section name to the header phrasings that
// fold into it.
type registryEntry struct {
	Canonical string
	Synonyms  []string
}

// The single source of truth for section synonyms. Both the extractor and
// the criterion evaluator resolve section names through this table, so the
// two can never drift apart. Table order is also match order.
//
//nolint:gochecknoglobals // Section vocabulary constants
var registry = []registryEntry{
	{ContactInformation, []string{"contact", "contact information", "personal information"}},
	{Summary, []string{"summary", "professional summary", "executive summary", "profile"}},
	{Objective, []string{"objective", "career objective", "professional objective"}},
	{Experience, []string{"experience", "work experience", "professional experience", "employment", "employment history"}},
	{Education, []string{"education", "academic background", "qualifications", "academic qualifications"}},
	{Skills, []string{"skills", "technical skills", "core competencies", "technologies", "technical competencies"}},
	{Projects, []string{"projects", "personal projects", "side projects", "portfolio", "notable projects"}},
	{Certifications, []string{"certifications", "certificates", "professional certifications"}},
}

// Canonical returns the canonical section names in registry order.
func Canonical() (names []string) {
	names = make([]string, 0, len(registry))
	for _, entry := range registry {
		names = append(names, entry.Canonical)
	}
	return names
}

// Synonyms returns the known header phrasings for a canonical section name.
func Synonyms(canonical string) (synonyms []string, found bool) {
	for _, entry := range registry {
		if entry.Canonical == canonical {
			synonyms = entry.Synonyms
			found = true
			return synonyms, found
		}
	}
	return synonyms, found
}

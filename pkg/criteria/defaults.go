package criteria

// Default returns the scoring criteria shipped with the tool. The same
// list lives in data/resume_scoring_criteria.json; `resume-review init`
// installs a copy of it for local editing.
func Default() (criterionList []Criterion) {
	criterionList = []Criterion{
		{Category: CategorySection, Type: "required", Pattern: "Experience", Weight: 0.15, Notes: "Work history is the backbone of the resume"},
		{Category: CategorySection, Type: "required", Pattern: "Education", Weight: 0.10, Notes: "Degrees and coursework"},
		{Category: CategorySection, Type: "required", Pattern: "Skills", Weight: 0.10, Notes: "Technical and domain skills"},
		{Category: CategorySection, Type: "recommended", Pattern: "Projects", Weight: 0.05, Notes: "Side projects and portfolio work"},
		{Category: CategoryBulletQuality, Type: "style", Pattern: "Bullets start with action verbs", Weight: 0.10, Notes: "Led, built, shipped"},
		{Category: CategoryBulletQuality, Type: "style", Pattern: "Bullets include numbers or metrics", Weight: 0.10, Notes: "Quantified impact"},
		{Category: CategoryKeywords, Type: "match", Pattern: "Python, Java, Go, SQL", Weight: 0.10, Notes: "Core languages"},
		{Category: CategoryKeywords, Type: "match", Pattern: "Docker, Kubernetes, AWS", Weight: 0.08, Notes: "Infrastructure tooling"},
		{Category: CategoryFormatting, Type: "structure", Pattern: "Reasonable bullet count", Weight: 0.08, Notes: "Between 2 and 15 bullets"},
		{Category: CategoryFormatting, Type: "structure", Pattern: "Sentence length in range", Weight: 0.05, Notes: "No run-on sentences"},
		{Category: CategoryReadability, Type: "style", Pattern: "Avoids passive voice", Weight: 0.05, Notes: "Active voice reads stronger"},
		{Category: CategoryATSFriendly, Type: "compatibility", Pattern: "Uses standard fonts", Weight: 0.02, Notes: "Plain text extraction assumed"},
		{Category: CategoryATSFriendly, Type: "compatibility", Pattern: "No graphics or images", Weight: 0.02, Notes: "Parsers choke on embedded media"},
	}

	return criterionList
}

package rubric

// Known subject tags. Anything else silently calibrates with the generic
// hint set.
const (
	SubjectPhysics   = "physics"
	SubjectMath      = "math"
	SubjectChemistry = "chemistry"
	SubjectBiology   = "biology"
	SubjectHistory   = "history"
	SubjectEnglish   = "english"
	SubjectGeneric   = "generic"
)

// subjectHints tells the calibration model what tends to make questions
// harder in each subject. Static policy text, keyed by normalized subject.
var subjectHints = map[string]string{
	SubjectPhysics: `Difficulty usually increases with:
- more steps of reasoning
- combining multiple concepts or chapters
- more symbolic/numerical manipulation
- subtle conceptual traps or edge cases`,

	SubjectMath: `Difficulty usually increases with:
- more algebraic / symbolic steps
- non-obvious transformations or tricks
- mixing multiple topics (e.g., algebra + geometry)`,

	SubjectChemistry: `Difficulty usually increases with:
- multiple-step reasoning over reactions or concepts
- quantitative reasoning and conceptual integration`,

	SubjectBiology: `Difficulty usually increases with:
- multi-layered mechanisms, pathways, or interactions
- applying concepts to new or unfamiliar contexts`,

	SubjectHistory: `Difficulty usually increases with:
- deeper causal reasoning between events
- comparing perspectives or ideologies
- inferring motives, bias, or implications`,

	SubjectEnglish: `Difficulty usually increases with:
- more inference and interpretation
- subtle use of tone, theme, or literary devices
- ambiguous or closely related answer options`,

	SubjectGeneric: `Difficulty usually increases with:
- more reasoning and abstraction
- less direct recall
- more complex language or structure`,
}

// hintFor returns the calibration hint for a normalized subject, falling
// back to the generic entry for unknown subjects.
func hintFor(subject string) string {
	if h, ok := subjectHints[subject]; ok {
		return h
	}
	return subjectHints[SubjectGeneric]
}

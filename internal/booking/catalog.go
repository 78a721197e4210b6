package booking

// Subject is a static catalog entry for a teachable topic.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Level is a static catalog entry for a difficulty band.
type Level struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// The catalog is fixed at build time. A catalog service could replace this
// without changing the generator's contract.
var subjects = []Subject{
	{ID: "math", Name: "Matematyka", Icon: "📐"},
	{ID: "chemistry", Name: "Chemia", Icon: "🧪"},
	{ID: "biology", Name: "Biologia", Icon: "🧬"},
	{ID: "physics", Name: "Fizyka", Icon: "⚛️"},
	{ID: "polish", Name: "Język Polski", Icon: "📚"},
	{ID: "english", Name: "Język Angielski", Icon: "🇬🇧"},
	{ID: "german", Name: "Język Niemiecki", Icon: "🇩🇪"},
	{ID: "spanish", Name: "Język Hiszpański", Icon: "🇪🇸"},
	{ID: "russian", Name: "Język Rosyjski", Icon: "🇷🇺"},
}

var levels = []Level{
	{ID: "basic", Name: "Podstawowy", Description: "Klasy 1-6"},
	{ID: "intermediate", Name: "Średni", Description: "Klasy 7-9"},
	{ID: "advanced", Name: "Zaawansowany", Description: "Liceum+"},
}

// Subjects returns a copy of the subject catalog.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// Levels returns a copy of the level catalog.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// SubjectByID looks up a subject.
func SubjectByID(id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// LevelByID looks up a level.
func LevelByID(id string) (Level, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

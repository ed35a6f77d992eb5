package chatbot

// Category names the bucket of canned reply text an incoming message falls into.
type Category string

const (
	CategoryProjects   Category = "projects"
	CategoryAwards     Category = "awards"
	CategorySkills     Category = "skills"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategoryDefault    Category = "default"
)

const numCategories = 6

// Categories lists every category in match priority order, default last.
var Categories = [numCategories]Category{
	CategoryProjects,
	CategoryAwards,
	CategorySkills,
	CategoryExperience,
	CategoryEducation,
	CategoryDefault,
}

func (c Category) String() string { return string(c) }

var categoryIndex = func() map[Category]int {
	m := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		m[c] = i
	}
	return m
}()

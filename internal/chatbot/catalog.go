package chatbot

import "strings"

// Replies is the editable form of the reply catalog, as it appears in the
// [replies] table of the content file.
type Replies struct {
	Projects   string `toml:"projects" json:"projects"`
	Awards     string `toml:"awards" json:"awards"`
	Skills     string `toml:"skills" json:"skills"`
	Experience string `toml:"experience" json:"experience"`
	Education  string `toml:"education" json:"education"`
	Default    string `toml:"default" json:"default"`
}

// DefaultReplies is the built-in reply text used for any category the content
// file leaves blank.
var DefaultReplies = Replies{
	Projects:   "I've worked on several exciting projects! My key projects include an IPO Data Pipeline with PySpark (95% performance improvement), a Quality Management Tool with Flask, and a Real-time Review Dashboard using React and Kafka. Which one interests you most?",
	Awards:     "I've been recognized with several awards: Hi5 Award for outstanding performance, Certificate of Appreciation for excellence in software development, and I was also a Smart India Hackathon Finalist. I'm also certified as a GIAC Python Coder from GUVI/IITM!",
	Skills:     "My technical skills span across full-stack development! I specialize in Python, React.js, Node.js, PySpark, Kafka, MongoDB, Docker, and Flask. I love working with data pipelines and real-time systems. What specific technology would you like to know about?",
	Experience: "I have 4+ years of experience in software development. Started as a freelance developer (2020-2022) working on Python automation, then joined Ramco Systems in 2022 where I've been building enterprise-scale solutions and winning awards for my contributions!",
	Education:  "I graduated with a B.Tech in Computer Science with 7.22 CGPA in 2020. I've also completed certifications in Modern React (Udemy), GIAC Python Coder (GUVI/IITM), and Python Programming (SLA Institute).",
	Default:    "That's a great question! I'm here to help you learn about Mohankumar's journey as a software engineer. You can ask me about his projects, awards, skills, experience, or education. What would you like to know more about?",
}

func (r Replies) get(c Category) string {
	switch c {
	case CategoryProjects:
		return r.Projects
	case CategoryAwards:
		return r.Awards
	case CategorySkills:
		return r.Skills
	case CategoryExperience:
		return r.Experience
	case CategoryEducation:
		return r.Education
	default:
		return r.Default
	}
}

// Catalog maps every Category to exactly one reply. It is built once and never
// mutated, so a single instance can be shared by any number of goroutines.
type Catalog struct {
	replies [numCategories]string
}

// NewCatalog builds a Catalog from r. Blank entries fall back to DefaultReplies
// so every category, default included, always has text.
func NewCatalog(r Replies) *Catalog {
	c := &Catalog{}
	for i, cat := range Categories {
		text := r.get(cat)
		if strings.TrimSpace(text) == "" {
			text = DefaultReplies.get(cat)
		}
		c.replies[i] = text
	}
	return c
}

// Reply returns the text for cat. Unknown categories get the default reply.
func (c *Catalog) Reply(cat Category) string {
	i, ok := categoryIndex[cat]
	if !ok {
		i = categoryIndex[CategoryDefault]
	}
	return c.replies[i]
}

// Replies returns a copy of the catalog contents.
func (c *Catalog) Replies() Replies {
	return Replies{
		Projects:   c.Reply(CategoryProjects),
		Awards:     c.Reply(CategoryAwards),
		Skills:     c.Reply(CategorySkills),
		Experience: c.Reply(CategoryExperience),
		Education:  c.Reply(CategoryEducation),
		Default:    c.Reply(CategoryDefault),
	}
}

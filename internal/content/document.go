package content

import (
	"strings"

	"github.com/Zachkp/folio/internal/chatbot"
)

// Document is everything the site shows about its owner, plus the chat reply
// text. It is loaded once at start-up and treated as read-only afterwards.
type Document struct {
	Profile        Profile         `toml:"profile" json:"profile"`
	Projects       []Project       `toml:"projects" json:"projects"`
	Skills         []Skill         `toml:"skills" json:"skills"`
	Awards         []Award         `toml:"awards" json:"awards"`
	Certifications []Certification `toml:"certifications" json:"certifications"`
	Milestones     []Milestone     `toml:"milestones" json:"milestones"`
	Replies        chatbot.Replies `toml:"replies" json:"-"`
}

type Profile struct {
	Name           string `toml:"name" json:"name"`
	Headline       string `toml:"headline" json:"headline"`
	About          string `toml:"about" json:"about"`
	Location       string `toml:"location" json:"location"`
	Email          string `toml:"email" json:"email"`
	Availability   string `toml:"availability" json:"availability"`
	ResumeFilename string `toml:"resume_filename" json:"resume_filename"`
}

type Project struct {
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description"`
	Tech        []string `toml:"tech" json:"tech"`
	Highlight   string   `toml:"highlight" json:"highlight,omitempty"`
}

type Skill struct {
	Name  string `toml:"name" json:"name"`
	Story string `toml:"story" json:"story"`
}

type Award struct {
	Title        string `toml:"title" json:"title"`
	Description  string `toml:"description" json:"description"`
	Organization string `toml:"organization" json:"organization"`
	Year         string `toml:"year" json:"year"`
}

type Certification struct {
	Name string `toml:"name" json:"name"`
	Org  string `toml:"org" json:"org"`
}

type Milestone struct {
	Year        string `toml:"year" json:"year"`
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
}

// Default returns the built-in document. Each call returns a fresh copy.
func Default() *Document {
	return &Document{
		Profile: Profile{
			Name:           "Mohankumar Palanisamy",
			Headline:       "Software Engineer & Tech Artist",
			About:          collapse(About),
			Location:       "Chennai, Tamil Nadu, India",
			Email:          "mohankumar.dev@email.com",
			Availability:   "Open to opportunities",
			ResumeFilename: "Mohankumar_Palanisamy_Resume.pdf",
		},
		Projects: []Project{
			{
				Title:       "IPO Data Pipeline",
				Description: collapse(ProjectPipeline),
				Tech:        []string{"PySpark", "Parquet", "Python"},
				Highlight:   "95% performance improvement",
			},
			{
				Title:       "Quality Management System",
				Description: collapse(ProjectQuality),
				Tech:        []string{"Flask", "SQL", "Python"},
			},
			{
				Title:       "Real-time Review Dashboard",
				Description: collapse(ProjectReviews),
				Tech:        []string{"React", "Express", "Kafka", "MongoDB"},
			},
		},
		Skills: []Skill{
			{"Python", "Built 10+ automation tools and data pipelines, including the award-winning IPO data processing system with 95% performance improvement."},
			{"React", "Developed responsive dashboards and SPAs, including real-time monitoring systems with seamless user experiences."},
			{"Node.js", "Built scalable backend services and APIs, handling enterprise-level data processing and real-time communications."},
			{"SQL", "Designed relational schemas and tuned queries behind reporting and quality workflows."},
			{"Kafka", "Streamed review events in real time between services for live dashboards."},
			{"Docker", "Containerized services for repeatable local development and deployment."},
			{"MongoDB", "Stored high-volume review data with flexible document models."},
			{"Flask", "Shipped the quality management platform's APIs and admin tooling."},
			{"PySpark", "Parallelized heavy ETL jobs over Parquet datasets."},
			{"Tailwind CSS", "Styled responsive interfaces quickly with utility classes."},
		},
		Awards: []Award{
			{"Hi5 Award", "Outstanding Performance Recognition", "Ramco Systems", "2023"},
			{"Certificate of Appreciation", "Excellence in Software Development", "Ramco Systems", "2024"},
			{"SIH Finalist", "Smart India Hackathon", "Government of India", "2023"},
			{"GIAC Python Coder", "Professional Certification", "GUVI/IITM", "2023"},
		},
		Certifications: []Certification{
			{"Modern React Development", "Udemy"},
			{"Python Programming", "SLA Institute"},
			{"Advanced SQL & Database Design", "Professional"},
		},
		Milestones: []Milestone{
			{"2020", "Computer Science Graduate", "Completed B.Tech in Computer Science with 7.22 CGPA. Built strong foundations in algorithms, data structures, and software engineering principles."},
			{"2020-2022", "Independent Developer", "Honed my skills as a freelance developer, specializing in Python automation and web development. Built solutions for various clients while mastering new technologies."},
			{"2022-Present", "Software Engineer at Ramco Systems", "Joined as a Software Engineer and quickly made impact with innovative solutions. Built enterprise-grade applications and received recognition for outstanding contributions."},
			{"2023-2024", "Awards & Recognition", "Recognized for exceptional performance with Hi5 Award and Certificate of Appreciation. Also achieved Smart India Hackathon Finalist status."},
		},
		Replies: chatbot.DefaultReplies,
	}
}

// collapse joins the indented multi-line copy above into a single paragraph.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package content

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load reads a TOML content file from path. A missing file yields Default();
// any section or profile field left empty in the file keeps its default.
func Load(path string) (*Document, error) {
	def := Default()
	if path == "" {
		return def, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return def, nil
	}

	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode content file %s", path)
	}

	merge(&doc, def)
	return &doc, nil
}

func merge(doc, def *Document) {
	p, dp := &doc.Profile, def.Profile
	fill(&p.Name, dp.Name)
	fill(&p.Headline, dp.Headline)
	fill(&p.About, dp.About)
	fill(&p.Location, dp.Location)
	fill(&p.Email, dp.Email)
	fill(&p.Availability, dp.Availability)
	fill(&p.ResumeFilename, dp.ResumeFilename)

	if len(doc.Projects) == 0 {
		doc.Projects = def.Projects
	}
	if len(doc.Skills) == 0 {
		doc.Skills = def.Skills
	}
	if len(doc.Awards) == 0 {
		doc.Awards = def.Awards
	}
	if len(doc.Certifications) == 0 {
		doc.Certifications = def.Certifications
	}
	if len(doc.Milestones) == 0 {
		doc.Milestones = def.Milestones
	}
	// Blank replies are filled by chatbot.NewCatalog.
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

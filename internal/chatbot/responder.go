package chatbot

import (
	"strings"

	"github.com/samber/lo"
)

type rule struct {
	category Category
	triggers []string
}

// rules are evaluated top to bottom and the first hit wins, so a message
// mentioning both projects and awards is answered as a projects question.
var rules = []rule{
	{category: CategoryProjects, triggers: []string{"project"}},
	{category: CategoryAwards, triggers: []string{"award"}},
	{category: CategorySkills, triggers: []string{"skill", "tech"}},
	{category: CategoryExperience, triggers: []string{"experience"}},
	{category: CategoryEducation, triggers: []string{"education"}},
}

// Classify returns the category selected by the first rule whose trigger
// substring appears in the lower-cased message, or CategoryDefault.
func Classify(message string) Category {
	normalized := strings.ToLower(message)
	for _, r := range rules {
		if lo.SomeBy(r.triggers, func(t string) bool {
			return strings.Contains(normalized, t)
		}) {
			return r.category
		}
	}
	return CategoryDefault
}

// Responder answers chat messages from a fixed Catalog.
type Responder struct {
	catalog *Catalog
}

func NewResponder(catalog *Catalog) *Responder {
	if catalog == nil {
		catalog = NewCatalog(DefaultReplies)
	}
	return &Responder{catalog: catalog}
}

// Respond returns the canned reply for message. It never fails; anything that
// matches no trigger gets the default reply.
func (r *Responder) Respond(message string) string {
	return r.catalog.Reply(Classify(message))
}

// Answer is Respond plus the category that produced the reply.
func (r *Responder) Answer(message string) (string, Category) {
	cat := Classify(message)
	return r.catalog.Reply(cat), cat
}

func (r *Responder) Catalog() *Catalog { return r.catalog }

// Rule is an exported view of one matching rule, for clients that need to
// reproduce Classify without a round trip.
type Rule struct {
	Category Category `json:"category"`
	Triggers []string `json:"triggers"`
}

// Rules returns the matching rules in priority order.
func Rules() []Rule {
	return lo.Map(rules, func(r rule, _ int) Rule {
		return Rule{Category: r.category, Triggers: append([]string(nil), r.triggers...)}
	})
}

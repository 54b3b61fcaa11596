// Package generator produces the synthetic records the sample dataset is
// built from. Names and titles are pure functions of their index so they
// cycle predictably as the dataset grows; derived fields (ORCID, DOI,
// citation counts, keywords) are drawn from the injected random source and
// are only guaranteed by shape, not by value.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator draws all non-deterministic content from a single injected
// random source, so tests can fix a seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// AuthorName composes an author name for the given country. The China
// locale combines surname and given name, every other country first and
// last name. Both schemes cycle over their lists: the fast index wraps at
// the first list's length, the slow index advances once per full cycle.
func AuthorName(country string, index int) string {
	if country == "China" {
		surname := chineseSurnames[index%len(chineseSurnames)]
		given := chineseGivenNames[(index/len(chineseSurnames))%len(chineseGivenNames)]
		return surname + given
	}
	first := englishFirstNames[index%len(englishFirstNames)]
	last := englishLastNames[(index/len(englishFirstNames))%len(englishLastNames)]
	return first + " " + last
}

// PaperTitle renders the title for the given paper index. Topic and
// template cycle at different periods, so consecutive papers do not repeat.
func PaperTitle(index int) string {
	topic := researchTopics[index%len(researchTopics)]
	template := paperTitleTemplates[index%len(paperTitleTemplates)]
	return fmt.Sprintf(template, topic)
}

// Email derives a deterministic address from name and organization.
func Email(name, country, abbreviation string) string {
	lower := strings.ToLower(name)
	abbrev := strings.ToLower(abbreviation)
	if country == "China" {
		return strings.ReplaceAll(lower, " ", "") + "@" + abbrev + ".edu.cn"
	}
	return strings.ReplaceAll(lower, " ", ".") + "@" + abbrev + ".edu"
}

// Keywords draws up to 3 distinct research topics, semicolon-joined.
func (g *Generator) Keywords() string {
	n := 3
	if n > len(researchTopics) {
		n = len(researchTopics)
	}
	picked := g.rng.Perm(len(researchTopics))[:n]
	topics := make([]string, n)
	for i, idx := range picked {
		topics[i] = researchTopics[idx]
	}
	return strings.Join(topics, ";")
}

// HIndex returns a reputation score in [10, 50].
func (g *Generator) HIndex() int {
	return 10 + g.rng.Intn(41)
}

// CitationCount returns a citation count in [0, 100].
func (g *Generator) CitationCount() int {
	return g.rng.Intn(101)
}

// Orcid returns an ORCID-shaped identifier (0000-000X-XXXX-XXXX).
func (g *Generator) Orcid() string {
	return fmt.Sprintf("0000-000%d-%d-%d",
		1+g.rng.Intn(9), 1000+g.rng.Intn(9000), 1000+g.rng.Intn(9000))
}

// Year picks one of the fixed publication years.
func (g *Generator) Year() int {
	return publicationYears[g.rng.Intn(len(publicationYears))]
}

// Venue picks a venue and suffixes the publication year.
func (g *Generator) Venue(year int) string {
	return fmt.Sprintf("%s %d", venues[g.rng.Intn(len(venues))], year)
}

// DOI returns a DOI-shaped string bound to the publication year.
func (g *Generator) DOI(year int) string {
	return fmt.Sprintf("10.%d/%s.%d.%d",
		1000+g.rng.Intn(9000),
		doiPublishers[g.rng.Intn(len(doiPublishers))],
		year,
		10000+g.rng.Intn(90000))
}

// Abstract renders the boilerplate abstract for the given paper index.
func Abstract(index int) string {
	return fmt.Sprintf("This paper presents a comprehensive study of %s. "+
		"We propose novel methods and conduct extensive experiments to demonstrate the effectiveness of our approach.",
		strings.ToLower(PaperTitle(index)))
}

// PaperURL returns the canonical URL for a paper id.
func PaperURL(paperID string) string {
	return "https://example.com/paper/" + paperID
}

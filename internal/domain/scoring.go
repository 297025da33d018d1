package domain

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/seoscope/seoscope/internal/observability"
)

// Profile selects which rule set the engine evaluates.
type Profile string

const (
	// ProfileFull evaluates every rule.
	ProfileFull Profile = "full"

	// ProfileFast evaluates a reduced rule set for throughput-sensitive
	// bulk audits.
	ProfileFast Profile = "fast"
)

const (
	maxScore = 100

	minTitleLength = 30
	maxTitleLength = 60

	minMetaDescriptionLength = 120
	maxMetaDescriptionLength = 160

	minWordCount          = 300
	maxKeywordDensity     = 0.05
	minAltCoverage        = 0.9
	subheadingWordBudget  = 300
)

// rule is one SEO check. Impact, effort, priority and confidence come
// from a fixed rubric per rule, never inferred at evaluation time.
type rule struct {
	title       string
	category    string
	weight      float64
	fast        bool
	applies     func(m Metrics) bool
	passes      func(m Metrics) bool
	description string
	actionSteps []string
	impact      string
	effort      Effort
	priority    Priority
	confidence  float64
}

// ScoringEngine converts extracted metrics into a composite score and
// an ordered list of recommendations. Evaluation is pure and
// deterministic: identical metrics always yield the identical score
// and recommendation order.
type ScoringEngine struct {
	rules []rule
}

// NewScoringEngine creates an engine with the standard rule table.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{rules: standardRules()}
}

// Evaluate scores the metrics under the given profile.
func (e *ScoringEngine) Evaluate(ctx context.Context, m Metrics, profile Profile) (Score, []Recommendation) {
	logger := observability.FromContext(ctx)

	type categoryTally struct {
		earned float64
		total  float64
	}
	tallies := make(map[string]*categoryTally)
	var recs []Recommendation

	for _, r := range e.rules {
		if profile == ProfileFast && !r.fast {
			continue
		}
		if r.applies != nil && !r.applies(m) {
			continue
		}

		passed, ok := evaluateRule(r, m)
		if !ok {
			// A single defective rule must not blank out the rest of
			// the result.
			logger.Warn("scoring rule panicked, skipping",
				observability.String("rule", r.title),
				observability.String("category", r.category))
			continue
		}

		tally, exists := tallies[r.category]
		if !exists {
			tally = &categoryTally{}
			tallies[r.category] = tally
		}
		tally.total += r.weight
		if passed {
			tally.earned += r.weight
			continue
		}

		recs = append(recs, Recommendation{
			Title:       r.title,
			Description: r.description,
			ActionSteps: append([]string(nil), r.actionSteps...),
			Category:    r.category,
			Impact:      r.impact,
			Effort:      r.effort,
			Priority:    r.priority,
			Confidence:  r.confidence,
		})
	}

	breakdown := make(map[string]int, len(tallies))
	var sum float64
	for category, tally := range tallies {
		score := clampScore(tally.earned / tally.total * maxScore)
		breakdown[category] = score
		sum += float64(score)
	}

	overall := 0
	if len(breakdown) > 0 {
		overall = clampScore(sum / float64(len(breakdown)))
	}

	return Score{Overall: overall, Breakdown: breakdown}, SortRecommendations(recs)
}

// evaluateRule runs a single rule check, recovering from panics caused
// by malformed metrics. ok is false when the rule panicked.
func evaluateRule(r rule, m Metrics) (passed, ok bool) {
	defer func() {
		if recover() != nil {
			passed, ok = false, false
		}
	}()
	return r.passes(m), true
}

// SortRecommendations deduplicates by title+category and orders by
// priority (critical first) then descending confidence. The sort is
// stable, so repeated calls return the identical order.
func SortRecommendations(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		key := rec.Title + "\x00" + rec.Category
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		}
		return out[i].Confidence > out[j].Confidence
	})

	return out
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > maxScore {
		return maxScore
	}
	return int(math.Round(v))
}

func altCoverage(m Metrics) float64 {
	if m.TotalImages == 0 {
		return 1
	}
	return float64(m.ImagesWithAlt) / float64(m.TotalImages)
}

func isHTML(m Metrics) bool { return m.IsHTML }

//nolint:funlen // Flat rule table, one literal per check.
func standardRules() []rule {
	return []rule{
		{
			title:       "Add a page title",
			category:    "title",
			weight:      2,
			fast:        true,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.TitleLength > 0 },
			description: "The page has no <title> element. Search engines use the title as the headline of the result snippet.",
			actionSteps: []string{"Write a unique, descriptive title", "Place the primary keyword near the start"},
			impact:      "Pages without titles are poorly ranked and poorly presented in results.",
			effort:      EffortLow,
			priority:    PriorityCritical,
			confidence:  0.95,
		},
		{
			title:       "Keep the title between 30 and 60 characters",
			category:    "title",
			weight:      1,
			fast:        true,
			applies: func(m Metrics) bool {
				return m.IsHTML && m.TitleLength > 0
			},
			passes: func(m Metrics) bool {
				return m.TitleLength >= minTitleLength && m.TitleLength <= maxTitleLength
			},
			description: "Titles outside the 30-60 character range are truncated or under-descriptive in result snippets.",
			actionSteps: []string{"Rewrite the title to 30-60 characters"},
			impact:      "Truncated titles lower click-through rates.",
			effort:      EffortLow,
			priority:    PriorityMedium,
			confidence:  0.8,
		},
		{
			title:       "Add a meta description",
			category:    "meta",
			weight:      2,
			fast:        true,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.MetaDescriptionLength > 0 },
			description: "The page has no meta description. Search engines fall back to arbitrary page text for the snippet.",
			actionSteps: []string{"Add a meta description summarizing the page", "Include the primary keyword naturally"},
			impact:      "A missing description costs control over the result snippet.",
			effort:      EffortLow,
			priority:    PriorityHigh,
			confidence:  0.9,
		},
		{
			title:       "Keep the meta description between 120 and 160 characters",
			category:    "meta",
			weight:      1,
			fast:        true,
			applies: func(m Metrics) bool {
				return m.IsHTML && m.MetaDescriptionLength > 0
			},
			passes: func(m Metrics) bool {
				return m.MetaDescriptionLength >= minMetaDescriptionLength &&
					m.MetaDescriptionLength <= maxMetaDescriptionLength
			},
			description: "Descriptions outside the 120-160 character range are truncated or leave snippet space unused.",
			actionSteps: []string{"Rewrite the description to 120-160 characters"},
			impact:      "Truncated descriptions lower click-through rates.",
			effort:      EffortLow,
			priority:    PriorityMedium,
			confidence:  0.75,
		},
		{
			title:       "Add a viewport meta tag",
			category:    "meta",
			weight:      1,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.HasViewport },
			description: "The page has no viewport meta tag, so mobile browsers render it at desktop width.",
			actionSteps: []string{`Add <meta name="viewport" content="width=device-width, initial-scale=1">`},
			impact:      "Pages that are not mobile-friendly rank lower in mobile search.",
			effort:      EffortLow,
			priority:    PriorityMedium,
			confidence:  0.85,
		},
		{
			title:    "Remove the noindex directive",
			category: "meta",
			weight:   2,
			applies: func(m Metrics) bool {
				return m.IsHTML && m.RobotsDirective != ""
			},
			passes: func(m Metrics) bool {
				return !strings.Contains(m.RobotsDirective, "noindex")
			},
			description: "The robots meta tag tells search engines not to index this page.",
			actionSteps: []string{"Remove noindex from the robots meta tag if the page should rank"},
			impact:      "A noindex directive excludes the page from search results entirely.",
			effort:      EffortLow,
			priority:    PriorityCritical,
			confidence:  0.95,
		},
		{
			title:       "Use exactly one H1 heading",
			category:    "headings",
			weight:      2,
			fast:        true,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.H1Count == 1 },
			description: "The page should have exactly one H1 stating its main topic.",
			actionSteps: []string{"Add a single H1 describing the page topic", "Demote extra H1s to H2"},
			impact:      "Missing or duplicated H1s blur the page topic for crawlers.",
			effort:      EffortLow,
			priority:    PriorityHigh,
			confidence:  0.85,
		},
		{
			title:       "Break long content up with H2 subheadings",
			category:    "headings",
			weight:      1,
			applies: func(m Metrics) bool {
				return m.IsHTML && m.WordCount >= subheadingWordBudget
			},
			passes:      func(m Metrics) bool { return m.H2Count > 0 },
			description: "Long content without subheadings is hard to scan for readers and crawlers alike.",
			actionSteps: []string{"Split the content into sections with H2 headings"},
			impact:      "Structure improves dwell time and featured-snippet eligibility.",
			effort:      EffortMedium,
			priority:    PriorityLow,
			confidence:  0.6,
		},
		{
			title:       "Increase content length",
			category:    "content",
			weight:      2,
			fast:        true,
			passes:      func(m Metrics) bool { return m.WordCount >= minWordCount },
			description: "Thin content rarely ranks for competitive queries.",
			actionSteps: []string{"Expand the content to at least 300 words", "Cover the topic in more depth"},
			impact:      "Longer, substantive content correlates with better rankings.",
			effort:      EffortHigh,
			priority:    PriorityHigh,
			confidence:  0.7,
		},
		{
			title:       "Reduce keyword stuffing",
			category:    "content",
			weight:      1,
			passes: func(m Metrics) bool {
				for _, density := range m.KeywordDensity {
					if density > maxKeywordDensity {
						return false
					}
				}
				return true
			},
			description: "One or more keywords exceed 5% of the text, which reads as stuffing.",
			actionSteps: []string{"Rewrite repetitive passages with synonyms and natural phrasing"},
			impact:      "Keyword stuffing risks ranking penalties.",
			effort:      EffortMedium,
			priority:    PriorityMedium,
			confidence:  0.65,
		},
		{
			title:       "Add alt text to images",
			category:    "images",
			weight:      1,
			applies: func(m Metrics) bool {
				return m.IsHTML && m.TotalImages > 0
			},
			passes:      func(m Metrics) bool { return altCoverage(m) >= minAltCoverage },
			description: "Less than 90% of images carry alt text.",
			actionSteps: []string{"Describe each image's content in its alt attribute"},
			impact:      "Alt text is required for image search and accessibility.",
			effort:      EffortLow,
			priority:    PriorityHigh,
			confidence:  0.9,
		},
		{
			title:       "Add internal links",
			category:    "links",
			weight:      1,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.InternalLinks > 0 },
			description: "The page links to no other page on the same site.",
			actionSteps: []string{"Link to related pages on the site"},
			impact:      "Internal links distribute authority and help crawlers discover pages.",
			effort:      EffortLow,
			priority:    PriorityMedium,
			confidence:  0.7,
		},
		{
			title:       "Add external references",
			category:    "links",
			weight:      1,
			applies:     isHTML,
			passes:      func(m Metrics) bool { return m.ExternalLinks > 0 },
			description: "The page cites no external sources.",
			actionSteps: []string{"Link to authoritative external sources where relevant"},
			impact:      "Outbound links to reputable sources support topical credibility.",
			effort:      EffortLow,
			priority:    PriorityLow,
			confidence:  0.5,
		},
	}
}

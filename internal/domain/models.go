package domain

import "time"

// Priority classifies how urgently a recommendation should be addressed.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of a priority (lower sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Effort estimates the work required to act on a recommendation.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// SuggestionType selects which aspect of the analysis an AI provider
// should generate supplementary suggestions for.
type SuggestionType string

const (
	SuggestionContent  SuggestionType = "content"
	SuggestionKeywords SuggestionType = "keywords"
	SuggestionMeta     SuggestionType = "meta"
	SuggestionLinks    SuggestionType = "links"
)

// Metrics holds the raw values extracted from a document before scoring.
type Metrics struct {
	IsHTML                bool               `json:"is_html"`
	Title                 string             `json:"title"`
	TitleLength           int                `json:"title_length"`
	MetaDescription       string             `json:"meta_description"`
	MetaDescriptionLength int                `json:"meta_description_length"`
	HasMetaKeywords       bool               `json:"has_meta_keywords"`
	HasViewport           bool               `json:"has_viewport"`
	RobotsDirective       string             `json:"robots_directive,omitempty"`
	WordCount             int                `json:"word_count"`
	H1Count               int                `json:"h1_count"`
	H2Count               int                `json:"h2_count"`
	H3Count               int                `json:"h3_count"`
	H1Texts               []string           `json:"h1_texts,omitempty"`
	TotalImages           int                `json:"total_images"`
	ImagesWithAlt         int                `json:"images_with_alt"`
	InternalLinks         int                `json:"internal_links"`
	ExternalLinks         int                `json:"external_links"`
	KeywordDensity        map[string]float64 `json:"keyword_density,omitempty"`
}

// Score is the composite assessment derived from Metrics.
type Score struct {
	Overall   int            `json:"overall"`
	Breakdown map[string]int `json:"breakdown"`
}

// Recommendation is a single actionable finding.
// Ordering is significant: engines return recommendations sorted by
// priority (critical first) then by descending confidence.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionSteps []string `json:"action_steps,omitempty"`
	Category    string   `json:"category"`
	Impact      string   `json:"impact"`
	Effort      Effort   `json:"effort"`
	Priority    Priority `json:"priority"`
	Confidence  float64  `json:"confidence"`
}

// AnalysisResult is the full outcome of analyzing one document.
// Results are treated as immutable once produced; cached copies are
// shared across callers, so consumers derive new values instead of
// mutating in place.
type AnalysisResult struct {
	Metrics         Metrics          `json:"metrics"`
	Keywords        []string         `json:"keywords,omitempty"`
	Score           Score            `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}

// Clone returns a deep copy so cached state cannot be mutated through
// a returned reference.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}

	out := *r

	if r.Metrics.H1Texts != nil {
		out.Metrics.H1Texts = append([]string(nil), r.Metrics.H1Texts...)
	}
	if r.Metrics.KeywordDensity != nil {
		out.Metrics.KeywordDensity = make(map[string]float64, len(r.Metrics.KeywordDensity))
		for k, v := range r.Metrics.KeywordDensity {
			out.Metrics.KeywordDensity[k] = v
		}
	}
	if r.Keywords != nil {
		out.Keywords = append([]string(nil), r.Keywords...)
	}
	if r.Score.Breakdown != nil {
		out.Score.Breakdown = make(map[string]int, len(r.Score.Breakdown))
		for k, v := range r.Score.Breakdown {
			out.Score.Breakdown[k] = v
		}
	}
	if r.Recommendations != nil {
		out.Recommendations = make([]Recommendation, len(r.Recommendations))
		for i, rec := range r.Recommendations {
			out.Recommendations[i] = rec
			if rec.ActionSteps != nil {
				out.Recommendations[i].ActionSteps = append([]string(nil), rec.ActionSteps...)
			}
		}
	}

	return &out
}

// BatchItem is one document in a batch analysis request.
type BatchItem struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// BatchResult pairs a batch item ID with either its analysis or the
// error that failed it. Exactly one of Result and Err is set.
type BatchResult struct {
	ID     string          `json:"id"`
	Result *AnalysisResult `json:"result,omitempty"`
	Err    error           `json:"-"`
}

// CacheStats are process-lifetime counters for one cache store.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
	Size      int64 `json:"size"`
}

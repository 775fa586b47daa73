package domain

// EntityCategoryLimit caps each entity list in a ContentRecord. The
// extraction is a pattern heuristic, so the lists are best-effort and
// order-unstable.
const EntityCategoryLimit = 10

// Entities groups the naive pattern-matched names found in an article.
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// ContentRecord is the normalized output of extracting one article.
// It is created fresh per extraction and never persisted directly; only
// the quiz payload built from it reaches the store.
type ContentRecord struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Sections []string `json:"sections"`
	Entities Entities `json:"key_entities"`
	FullText string   `json:"full_text"`
}

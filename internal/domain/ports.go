package domain

import "context"

// ArticleExtractor turns an article URL into a normalized ContentRecord.
type ArticleExtractor interface {
	// Extract fetches and parses the article at url. It fails with a
	// NETWORK_ERROR after exhausting retries or a CONTENT_ERROR when the
	// document itself is rejected (not found, forbidden).
	Extract(ctx context.Context, url string) (*ContentRecord, error)

	// SearchTopic resolves a free-text topic to an article URL.
	SearchTopic(ctx context.Context, topic string) (string, error)
}

// QuizGenerator produces a quiz payload from extracted article content.
type QuizGenerator interface {
	// Generate tries the configured model candidates in order and returns
	// the first syntactically valid quiz. When every candidate fails it
	// degrades to the bundled sample if one is loaded; otherwise it fails
	// with a GENERATION_ERROR (or CONFIG_ERROR when no provider is
	// configured at all).
	Generate(ctx context.Context, content *ContentRecord) (*QuizPayload, error)
}

// QuizRepository is the persistence port for generated quizzes. A
// null-object implementation stands in when no database is configured,
// so callers never branch on availability.
type QuizRepository interface {
	// UpsertByURL inserts a record for url or, when one exists, overwrites
	// its title/summary/data, resets created_at and clears user answers.
	// It returns the stable record ID.
	UpsertByURL(ctx context.Context, url, title, summary string, payload *QuizPayload) (string, error)

	GetByID(ctx context.Context, id string) (*QuizRecord, error)

	ListRecent(ctx context.Context, limit int) ([]*QuizRecord, error)

	DeleteByID(ctx context.Context, id string) error

	// MergeUserAnswers replaces the stored user answers for a record.
	MergeUserAnswers(ctx context.Context, id string, answers map[string]string) (*QuizRecord, error)

	// Available reports whether the repository is backed by real storage.
	Available() bool
}

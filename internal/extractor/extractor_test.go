package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"wiki-quiz/internal/config"
	"wiki-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.ExtractorConfig {
	return config.ExtractorConfig{
		MaxAttempts:    3,
		BackoffBase:    20 * time.Millisecond,
		ConnectTimeout: 200 * time.Millisecond,
		RequestTimeout: 100 * time.Millisecond,
		FullTextLimit:  10000,
		RawTextLimit:   6000,
		UserAgent:      "wiki-quiz-test",
	}
}

const articleHTML = `<html><body>
<h1 id="firstHeading">Alan Turing</h1>
<div id="mw-content-text"><div class="mw-parser-output">
<p class="mw-empty-elt"></p>
<p>Alan Turing was an English mathematician and computer scientist.</p>
<p>He worked at Cambridge University and later in Manchester, England.</p>
<h2><span class="mw-headline">Early life</span></h2>
<p>Turing was born in Maida Vale, London.</p>
<h3><span class="mw-headline">Education</span></h3>
<p>He studied under Alonzo Church.</p>
<h2><span class="mw-headline">Career</span></h2>
<p>He led Hut 8 at Bletchley Park.</p>
<h2><span class="mw-headline">Legacy</span></h2>
<p>The Turing Award is named after him.</p>
<h2><span class="mw-headline">References</span></h2>
<p>Reference text that is beyond the third section.</p>
</div></div>
</body></html>`

func TestExtractParsesArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	e := NewExtractor(testConfig(), zap.NewNop())
	record, err := e.Extract(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Alan Turing", record.Title)
	assert.Equal(t, "Alan Turing was an English mathematician and computer scientist.", record.Summary)
	assert.Equal(t, []string{"Early life", "Education", "Career", "Legacy", "References"}, record.Sections)

	assert.Contains(t, record.FullText, "Alan Turing was an English mathematician")
	assert.Contains(t, record.FullText, "## Early life")
	assert.Contains(t, record.FullText, "## Career")
	assert.Contains(t, record.FullText, "## Legacy")
	// The body walk stops after three top-level sections.
	assert.NotContains(t, record.FullText, "beyond the third section")

	assert.Contains(t, record.Entities.People, "Alan Turing")
	assert.Contains(t, record.Entities.Organizations, "Cambridge University")
	assert.Contains(t, record.Entities.Locations, "Manchester, England")
}

func TestExtractNotFoundFailsFast(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := NewExtractor(testConfig(), zap.NewNop())
	_, err := e.Extract(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeContent))
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "404 must not be retried")
}

func TestExtractForbiddenFailsFast(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	e := NewExtractor(testConfig(), zap.NewNop())
	_, err := e.Extract(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeContent))
	assert.Contains(t, err.Error(), "forbidden")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestExtractRetriesTransientStatuses(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testConfig()
	e := NewExtractor(cfg, zap.NewNop())

	start := time.Now()
	_, err := e.Extract(context.Background(), server.URL)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeNetwork))
	assert.Equal(t, int32(cfg.MaxAttempts), atomic.LoadInt32(&hits))
	// Backoff between 3 attempts: base*1 + base*2.
	assert.GreaterOrEqual(t, elapsed, 3*cfg.BackoffBase)
}

func TestExtractTimeoutExhaustsRetries(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig()
	e := NewExtractor(cfg, zap.NewNop())
	_, err := e.Extract(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeNetwork))
	assert.Contains(t, err.Error(), "timeout")
	assert.Equal(t, int32(cfg.MaxAttempts), atomic.LoadInt32(&hits))
}

func TestExtractFallsBackToRawText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>No recognizable content container here, just visible text.</p></body></html>`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.FullTextLimit = 40
	e := NewExtractor(cfg, zap.NewNop())

	record, err := e.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Title", record.Title)
	assert.NotEmpty(t, record.FullText)
	assert.LessOrEqual(t, len([]rune(record.FullText)), cfg.FullTextLimit)
}

func TestSearchTopic(t *testing.T) {
	t.Run("ReturnsTopResult", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
			assert.Equal(t, "Alan Turing", r.URL.Query().Get("search"))
			w.Write([]byte(`["Alan Turing",["Alan Turing"],[""],["https://en.wikipedia.org/wiki/Alan_Turing"]]`))
		}))
		defer server.Close()

		e := NewExtractor(testConfig(), zap.NewNop())
		e.searchEndpoint = server.URL

		url, err := e.SearchTopic(context.Background(), "Alan Turing")
		require.NoError(t, err)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Alan_Turing", url)
	})

	t.Run("NoResults", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["nope",[],[],[]]`))
		}))
		defer server.Close()

		e := NewExtractor(testConfig(), zap.NewNop())
		e.searchEndpoint = server.URL

		_, err := e.SearchTopic(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodeContent))
	})
}

package extractor

import (
	"fmt"
	"strings"
	"testing"

	"wiki-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	text := "Alan Turing studied at Cambridge University. " +
		"He was born in London, England and worked with John Neumann. " +
		"The Turing Foundation honors him. Alan Turing is remembered."

	entities := extractEntities(text)

	assert.Contains(t, entities.People, "Alan Turing")
	assert.Contains(t, entities.People, "John Neumann")
	assert.Contains(t, entities.Organizations, "Cambridge University")
	assert.Contains(t, entities.Organizations, "Turing Foundation")
	assert.Contains(t, entities.Locations, "London, England")

	// Duplicate mentions collapse to one entry.
	count := 0
	for _, p := range entities.People {
		if p == "Alan Turing" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractEntitiesCapsPerCategory(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 26; i++ {
		fmt.Fprintf(&b, "Aaron Smith%c spoke. ", 'a'+i)
	}

	entities := extractEntities(b.String())
	assert.Len(t, entities.People, domain.EntityCategoryLimit)
}

func TestExtractEntitiesEmptyText(t *testing.T) {
	entities := extractEntities("")
	assert.Empty(t, entities.People)
	assert.Empty(t, entities.Organizations)
	assert.Empty(t, entities.Locations)
}

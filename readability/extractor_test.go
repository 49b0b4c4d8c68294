package readability_test

import (
	"testing"

	"github.com/fwojciec/sitesum"
	"github.com/fwojciec/sitesum/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Page Title</title><style>.hidden { display: none }</style></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Main Heading</h1>
<p>This is the important article paragraph text that must be kept in the summary input.</p>
<p>A second paragraph adds enough text for the article to be recognised as content.</p>
<script>var tracking = "script-secret";</script>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, sitesum.EPARSE, sitesum.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(articlePage)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_KeepsMainArticleText(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(articlePage)

	require.NoError(t, err)
	assert.Contains(t, result.Body, "important article paragraph text")
	assert.NotContains(t, result.Body, "<p")
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(articlePage)

	require.NoError(t, err)
	assert.NotContains(t, result.Body, "Home Nav Link")
	assert.NotContains(t, result.Body, "Footer copyright text")
	assert.NotContains(t, result.Body, "script-secret")
	assert.NotContains(t, result.Body, "display: none")
}

func TestExtractor_BodyHasNoBlankLines(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(articlePage)

	require.NoError(t, err)
	assert.NotContains(t, result.Body, "\n\n")
	assert.Equal(t, sitesum.NormalizeText(result.Body), result.Body)
}

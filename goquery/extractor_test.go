package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitesum"
	"github.com/fwojciec/sitesum/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and body text without script content", func(t *testing.T) {
		t.Parallel()

		html := `<html><title>Test</title><body><p>Hello</p><script>x=1</script></body></html>`

		content, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Test", content.Title)
		assert.Equal(t, "Hello", content.Body)
	})

	t.Run("joins text nodes with newlines and trims each", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>  Docs  </title></head><body>
			<h1>  Welcome  </h1>
			<p>First <b>bold</b> paragraph.</p>
			<ul><li>one</li><li>   </li><li>two</li></ul>
		</body></html>`

		content, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Docs", content.Title)
		assert.Equal(t, "Welcome\nFirst\nbold\nparagraph.\none\ntwo", content.Body)
	})

	t.Run("uses placeholder when title is missing", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract(`<html><body><p>No head here</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, sitesum.NoTitle, content.Title)
		assert.Equal(t, "No title found", content.Title)
	})

	t.Run("uses placeholder when title is blank", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract(`<html><head><title> </title></head><body>x</body></html>`)

		require.NoError(t, err)
		assert.Equal(t, sitesum.NoTitle, content.Title)
	})

	t.Run("returns empty body for empty body element", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract(`<html><head></head><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, sitesum.NoTitle, content.Title)
		assert.Empty(t, content.Body)
	})

	t.Run("ignores head content other than the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><style>.head{}</style><meta name="x" content="meta text"></head>
			<body><p>visible</p></body></html>`

		content, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "visible", content.Body)
	})

	t.Run("skips comments", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract(`<html><body><!-- hidden note --><p>shown</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "shown", content.Body)
	})

	t.Run("keeps navigation text", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract(`<html><body><nav><a href="/">Home</a></nav><main>Article</main></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Home\nArticle", content.Body)
	})

	t.Run("returns parse error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("   \n")

		require.Error(t, err)
		assert.Equal(t, sitesum.EPARSE, sitesum.ErrorCode(err))
		assert.Contains(t, sitesum.ErrorMessage(err), "empty HTML input")
	})

	t.Run("treats plain text as a body", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Extract("just some text")

		require.NoError(t, err)
		assert.Equal(t, "just some text", content.Body)
	})
}

func TestExtractor_Extract_DiscardsNonTextElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		secret string
	}{
		{"script", `<script>var secret = "script-secret";</script>`, "script-secret"},
		{"nested script", `<div><span><script>document.write("nested-secret")</script></span></div>`, "nested-secret"},
		{"style", `<style>.style-secret { color: red }</style>`, "style-secret"},
		{"img", `<img src="a.png" alt="img-secret">`, "img-secret"},
		{"image", `<image src="b.png" alt="image-secret">`, "image-secret"},
		{"input", `<input type="text" value="input-secret">`, "input-secret"},
		{"noscript", `<noscript><img src="pixel.gif" alt="noscript-secret"></noscript>`, "noscript-secret"},
		{"iframe", `<iframe>fallback <b>iframe-secret</b></iframe>`, "iframe-secret"},
		{"noembed", `<noembed><i>noembed-secret</i></noembed>`, "noembed-secret"},
		{"noframes", `<noframes><p>noframes-secret</p></noframes>`, "noframes-secret"},
		{"xmp", `<xmp><i>xmp-secret</i></xmp>`, "xmp-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := "<html><head><title>T</title></head><body><p>before</p>" + tt.markup + "<p>after</p></body></html>"

			content, err := goquery.NewExtractor().Extract(html)

			require.NoError(t, err)
			assert.NotContains(t, content.Body, tt.secret)
			assert.NotContains(t, content.Body, "<")
			assert.True(t, strings.HasPrefix(content.Body, "before"))
			assert.True(t, strings.HasSuffix(content.Body, "after"))
		})
	}
}

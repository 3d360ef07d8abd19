package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderHTML(t *testing.T) {
	r := NewRenderer()

	t.Run("renders headings and emphasis", func(t *testing.T) {
		out, err := r.RenderHTML("## Portfolio Risk\n\nLeverage is **elevated**.")
		require.NoError(t, err)

		assert.Contains(t, out, "<h2")
		assert.Contains(t, out, "Portfolio Risk")
		assert.Contains(t, out, "<strong>elevated</strong>")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		out, err := r.RenderHTML("| Metric | Value |\n| --- | --- |\n| Debt/EBITDA | 3.45 |")
		require.NoError(t, err)

		assert.Contains(t, out, "<table")
		assert.Contains(t, out, "Debt/EBITDA")
	})

	t.Run("strips script injection", func(t *testing.T) {
		out, err := r.RenderHTML("risk summary\n\n<script>alert(1)</script>")
		require.NoError(t, err)

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "risk summary")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out, err := r.RenderHTML(`<p onclick="steal()">note</p>`)
		require.NoError(t, err)

		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "note")
	})
}

func TestRenderer_Sanitize(t *testing.T) {
	r := NewRenderer()

	out := r.Sanitize(`<div class="summary"><iframe src="https://evil"></iframe>ok</div>`)

	assert.NotContains(t, out, "iframe")
	assert.Contains(t, out, "ok")
}

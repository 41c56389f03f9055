package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"landing-page-backend/internal/database/models"
	"landing-page-backend/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, root, rel, html string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))
}

func testVideos(ids ...int64) []render.Video {
	out := make([]render.Video, len(ids))
	for i, id := range ids {
		out[i] = render.Video{ID: id, Title: "v", PosterURL: "https://cdn.test.com/p.jpg"}
	}
	return out
}

func TestFileRenderer_Render(t *testing.T) {
	templatesRoot := t.TempDir()
	generatedRoot := t.TempDir()
	writeTemplate(t, templatesRoot, "grid/index.html",
		`<html><head><link href="./css/style.css"><script src="./js/app.js"></script></head><body></body></html>`)

	r := render.NewFileRenderer(templatesRoot, generatedRoot)
	tmpl := &models.Template{ID: 10, HTMLFilePath: "grid/index.html", StaticAssetsPath: "grid", MaxVideos: 2}

	url, err := r.Render(tmpl, testVideos(3, 1), "5/10.html")
	require.NoError(t, err)
	assert.Equal(t, "/generated/5/10.html", url)

	content, err := os.ReadFile(filepath.Join(generatedRoot, "5", "10.html"))
	require.NoError(t, err)
	html := string(content)

	// relative asset references are rewritten to the public static prefix
	assert.Contains(t, html, `href="/templates/grid/css/style.css"`)
	assert.Contains(t, html, `src="/templates/grid/js/app.js"`)
	// the ordered selection is injected for the page script
	assert.Contains(t, html, `<script id="lps-selected-videos" type="application/json">`)
	assert.Contains(t, html, `"id":3`)
	assert.Contains(t, html, `"id":1`)
}

func TestFileRenderer_TruncatesToCapacity(t *testing.T) {
	templatesRoot := t.TempDir()
	generatedRoot := t.TempDir()
	writeTemplate(t, templatesRoot, "solo/index.html", `<html><body></body></html>`)

	r := render.NewFileRenderer(templatesRoot, generatedRoot)
	tmpl := &models.Template{ID: 11, HTMLFilePath: "solo/index.html", MaxVideos: 1}

	_, err := r.Render(tmpl, testVideos(7, 8, 9), "5/11.html")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(generatedRoot, "5", "11.html"))
	require.NoError(t, err)
	html := string(content)

	// only the first slot survives; the surplus has no placement
	assert.Contains(t, html, `"id":7`)
	assert.NotContains(t, html, `"id":8`)
	assert.NotContains(t, html, `"id":9`)
}

func TestFileRenderer_MissingTemplateHTML(t *testing.T) {
	r := render.NewFileRenderer(t.TempDir(), t.TempDir())
	tmpl := &models.Template{ID: 12, HTMLFilePath: "gone/index.html", MaxVideos: 1}

	_, err := r.Render(tmpl, testVideos(1), "5/12.html")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "template html file not found")
}

func TestFileRenderer_InjectsWithoutBodyTag(t *testing.T) {
	templatesRoot := t.TempDir()
	generatedRoot := t.TempDir()
	writeTemplate(t, templatesRoot, "bare/index.html", `<div>no body tag</div>`)

	r := render.NewFileRenderer(templatesRoot, generatedRoot)
	tmpl := &models.Template{ID: 13, HTMLFilePath: "bare/index.html", MaxVideos: 1}

	_, err := r.Render(tmpl, testVideos(1), "5/13.html")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(generatedRoot, "5", "13.html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `lps-selected-videos`)
}

func TestFileRenderer_Remove(t *testing.T) {
	templatesRoot := t.TempDir()
	generatedRoot := t.TempDir()
	writeTemplate(t, templatesRoot, "grid/index.html", `<html><body></body></html>`)

	r := render.NewFileRenderer(templatesRoot, generatedRoot)
	tmpl := &models.Template{ID: 10, HTMLFilePath: "grid/index.html", MaxVideos: 1}

	_, err := r.Render(tmpl, testVideos(1), "5/10.html")
	require.NoError(t, err)

	require.NoError(t, r.Remove("5/10.html"))
	_, err = os.Stat(filepath.Join(generatedRoot, "5", "10.html"))
	assert.True(t, os.IsNotExist(err))

	// removing twice is not an error
	assert.NoError(t, r.Remove("5/10.html"))
}

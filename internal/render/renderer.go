package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"landing-page-backend/internal/database/models"
)

//go:generate mockgen -source=renderer.go -destination=../mocks/render_mocks.go -package=mocks

// Video is the slice of a catalog record a template needs for slot
// placement
type Video struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
}

// PageRenderer turns a template plus an ordered video list into a servable
// artifact and returns its public URL. Callers always pass the full ordered
// selection; the renderer truncates to the template's capacity, since slot
// placement policy belongs to rendering rather than orchestration.
type PageRenderer interface {
	Render(tmpl *models.Template, videos []Video, relPath string) (string, error)
	Remove(relPath string) error
}

// FileRenderer renders landing pages from static HTML template files. It
// rewrites relative asset references to the template's public static prefix
// and injects the selected-video payload for the page script to consume.
type FileRenderer struct {
	templatesRoot string
	generatedRoot string
}

// Ensure FileRenderer implements PageRenderer
var _ PageRenderer = (*FileRenderer)(nil)

// NewFileRenderer creates a renderer rooted at the registered template
// directory and the generated artifact directory
func NewFileRenderer(templatesRoot, generatedRoot string) *FileRenderer {
	return &FileRenderer{
		templatesRoot: templatesRoot,
		generatedRoot: generatedRoot,
	}
}

// Render reads the template HTML, binds the video selection and writes the
// artifact under relPath. The returned URL is relative to the server root
// and servable through the /generated static route.
func (r *FileRenderer) Render(tmpl *models.Template, videos []Video, relPath string) (string, error) {
	htmlPath, err := r.resolveHTMLPath(tmpl.HTMLFilePath)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(htmlPath)
	if err != nil {
		return "", fmt.Errorf("read template html: %w", err)
	}

	html := string(content)
	html = r.rewriteAssetPaths(html, tmpl.StaticAssetsPath)

	// Templates only have max_videos slots; everything past that has no
	// placement on the page.
	selected := videos
	if len(selected) > tmpl.MaxVideos {
		selected = selected[:tmpl.MaxVideos]
	}

	html, err = injectSelectedVideos(html, selected)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(r.generatedRoot, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write generated html: %w", err)
	}

	return "/generated/" + path.Clean(relPath), nil
}

// Remove deletes a previously rendered artifact. Used to roll back partial
// batches; a missing file is not an error.
func (r *FileRenderer) Remove(relPath string) error {
	outputPath := filepath.Join(r.generatedRoot, filepath.FromSlash(relPath))
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolveHTMLPath accepts absolute paths, paths relative to the process
// working directory and paths relative to the templates root, since
// operators register templates with any of the three.
func (r *FileRenderer) resolveHTMLPath(rawPath string) (string, error) {
	candidates := []string{
		rawPath,
		filepath.Join(r.templatesRoot, rawPath),
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("template html file not found for path: %s", rawPath)
}

// rewriteAssetPaths turns ./css/style.css style references into absolute
// /templates/... URLs so the artifact renders correctly from the generated
// directory.
func (r *FileRenderer) rewriteAssetPaths(html, staticAssetsPath string) string {
	prefix := "/templates"
	if staticAssetsPath != "" {
		rel := staticAssetsPath
		if filepath.IsAbs(rel) {
			if v, err := filepath.Rel(r.templatesRoot, rel); err == nil && !strings.HasPrefix(v, "..") {
				rel = v
			} else {
				rel = ""
			}
		}
		if rel != "" {
			prefix = "/templates/" + filepath.ToSlash(rel)
		}
	}
	prefix = strings.TrimRight(prefix, "/")

	html = strings.ReplaceAll(html, `href="./`, `href="`+prefix+`/`)
	html = strings.ReplaceAll(html, `src="./`, `src="`+prefix+`/`)
	return html
}

// injectSelectedVideos embeds the bound selection as a JSON script block the
// template's page script reads to populate its video slots
func injectSelectedVideos(html string, videos []Video) (string, error) {
	payload, err := json.Marshal(videos)
	if err != nil {
		return "", fmt.Errorf("marshal selected videos: %w", err)
	}

	snippet := `<script id="lps-selected-videos" type="application/json">` + string(payload) + `</script>`
	if strings.Contains(html, "</body>") {
		return strings.Replace(html, "</body>", snippet+"\n</body>", 1), nil
	}
	return html + snippet, nil
}

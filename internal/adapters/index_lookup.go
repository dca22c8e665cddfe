package adapters

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"repomap/internal/shared"
	"repomap/internal/types"
)

// IndexLookupAdapter probes package indices over the simple API
// (PEP 503): GET <index>/<normalized-name>/ and scrape the anchor tags
// of the returned page into release files with parsed versions.
type IndexLookupAdapter struct {
	Client *http.Client
}

const defaultLookupTimeout = 30 * time.Second

// Anchors on simple pages carry the file URL in href and the filename
// as text. Attribute order beyond href is not fixed across indices.
var anchorPattern = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]+)"[^>]*>\s*([^<]+?)\s*</a>`)

func NewIndexLookupAdapter() IndexLookupAdapter {
	return IndexLookupAdapter{
		Client: &http.Client{Timeout: defaultLookupTimeout},
	}
}

func (a IndexLookupAdapter) FindProject(ctx context.Context, indexURL string, project string) (types.IndexPage, bool, error) {
	if strings.TrimSpace(indexURL) == "" {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index url is empty")
	}
	normalized := shared.NormalizeProjectName(project)
	if normalized == "" {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project name is empty")
	}

	pageURL := strings.TrimSuffix(indexURL, "/") + "/" + normalized + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to build index request").
			WithCause(err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := a.Client.Do(req)
	if err != nil {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("index request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Ctx(ctx).Debug().Str("url", pageURL).Msg("project not on index")
		return types.IndexPage{}, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unexpected index response").
			WithCause(shared.HTTPStatusError(resp.StatusCode, pageURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.IndexPage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read index response").
			WithCause(err)
	}

	files := parseSimplePage(pageURL, string(body))
	log.Ctx(ctx).Debug().Str("url", pageURL).Int("files", len(files)).Msg("index page parsed")
	return types.IndexPage{
		IndexURL: indexURL,
		Project:  normalized,
		Files:    files,
	}, true, nil
}

func parseSimplePage(pageURL string, body string) []types.ReleaseFile {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var files []types.ReleaseFile
	for _, match := range anchorPattern.FindAllStringSubmatch(body, -1) {
		href := match[1]
		filename := strings.TrimSpace(match[2])
		if filename == "" {
			continue
		}
		files = append(files, types.ReleaseFile{
			Filename: filename,
			URL:      resolveFileURL(base, href),
			Version:  versionFromFilename(filename),
		})
	}

	// Newest first; files with unparseable versions sink to the end.
	sort.SliceStable(files, func(i, j int) bool {
		vi, erri := pep440.Parse(files[i].Version)
		vj, errj := pep440.Parse(files[j].Version)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return vi.GreaterThan(vj)
	})
	return files
}

func resolveFileURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	ref.Fragment = ""
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

var archiveSuffixes = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".zip", ".tgz"}

// versionFromFilename extracts the release version from a wheel or
// sdist filename, or returns "" when it cannot.
func versionFromFilename(filename string) string {
	if strings.HasSuffix(filename, ".whl") || strings.HasSuffix(filename, ".egg") {
		// {name}-{version}-{tags}: the version is the second segment.
		parts := strings.Split(strings.TrimSuffix(strings.TrimSuffix(filename, ".whl"), ".egg"), "-")
		if len(parts) < 2 {
			return ""
		}
		if _, err := pep440.Parse(parts[1]); err != nil {
			return ""
		}
		return parts[1]
	}
	for _, suffix := range archiveSuffixes {
		if !strings.HasSuffix(filename, suffix) {
			continue
		}
		stem := strings.TrimSuffix(filename, suffix)
		idx := strings.LastIndex(stem, "-")
		if idx < 0 {
			return ""
		}
		candidate := stem[idx+1:]
		if _, err := pep440.Parse(candidate); err != nil {
			return ""
		}
		return candidate
	}
	return ""
}

package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSimplePage = `<!DOCTYPE html>
<html>
  <body>
    <a href="/packages/acme_widget-1.2.0-py3-none-any.whl#sha256=abc">acme_widget-1.2.0-py3-none-any.whl</a>
    <a href="/packages/acme_widget-0.9.1.tar.gz#sha256=def">acme_widget-0.9.1.tar.gz</a>
    <a href="/packages/acme_widget-2.0.0rc1.tar.gz">acme_widget-2.0.0rc1.tar.gz</a>
  </body>
</html>`

func newSimpleIndexServer(t *testing.T, project string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/simple/"+project+"/" {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(sampleSimplePage))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFindProjectParsesSimplePage(t *testing.T) {
	server := newSimpleIndexServer(t, "acme-widget")
	adapter := IndexLookupAdapter{Client: server.Client()}

	page, found, err := adapter.FindProject(context.Background(), server.URL+"/simple/", "Acme.Widget")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "acme-widget", page.Project, "lookup normalizes per PEP 503")
	require.Len(t, page.Files, 3)

	// Newest version first.
	versions := []string{page.Files[0].Version, page.Files[1].Version, page.Files[2].Version}
	if diff := cmp.Diff([]string{"2.0.0rc1", "1.2.0", "0.9.1"}, versions); diff != "" {
		t.Fatalf("unexpected version order (-want +got):\n%s", diff)
	}

	assert.Equal(t, "acme_widget-2.0.0rc1.tar.gz", page.Files[0].Filename)
	assert.Equal(t, server.URL+"/packages/acme_widget-1.2.0-py3-none-any.whl", page.Files[1].URL,
		"href resolved against the page and fragment stripped")
}

func TestFindProjectNotOnIndex(t *testing.T) {
	server := newSimpleIndexServer(t, "acme-widget")
	adapter := IndexLookupAdapter{Client: server.Client()}

	_, found, err := adapter.FindProject(context.Background(), server.URL+"/simple/", "missing-pkg")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindProjectServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	adapter := IndexLookupAdapter{Client: server.Client()}

	_, _, err := adapter.FindProject(context.Background(), server.URL+"/simple/", "acme-widget")
	require.Error(t, err)
}

func TestFindProjectEmptyArguments(t *testing.T) {
	adapter := NewIndexLookupAdapter()

	_, _, err := adapter.FindProject(context.Background(), "", "acme-widget")
	require.Error(t, err)

	_, _, err = adapter.FindProject(context.Background(), "https://pypi.org/simple/", "   ")
	require.Error(t, err)
}

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"acme_widget-1.2.0-py3-none-any.whl", "1.2.0"},
		{"acme_widget-0.9.1.tar.gz", "0.9.1"},
		{"acme_widget-2.0.0rc1.zip", "2.0.0rc1"},
		{"acme-widget-1.0.tar.bz2", "1.0"},
		{"README.txt", ""},
		{"acme_widget.tar.gz", ""},
	}
	for _, tt := range tests {
		if got := versionFromFilename(tt.filename); got != tt.want {
			t.Fatalf("versionFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

package types

// ReleaseFile is one distribution file advertised by a simple-API
// project page.
type ReleaseFile struct {
	// Filename as advertised by the index, e.g. "acme_widget-1.2.0.tar.gz".
	Filename string

	// URL the file is served from, resolved against the page URL.
	URL string

	// Version parsed from the filename, empty when unparseable.
	Version string
}

// IndexPage is the result of probing one index URL for a project.
type IndexPage struct {
	// IndexURL is the index that served the page.
	IndexURL string

	// Project is the normalized project name the page belongs to.
	Project string

	// Files are the advertised release files, newest version first.
	Files []ReleaseFile
}

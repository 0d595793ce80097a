package entities

// ContentDomain tags a content collection served by the library module. The
// same bookmark/progress logic runs for every domain.
type ContentDomain string

const (
	DomainEducation  ContentDomain = "education"
	DomainHealthTips ContentDomain = "health-tips"
)

// KnownDomain reports whether tag names a served content domain.
func KnownDomain(tag string) bool {
	switch ContentDomain(tag) {
	case DomainEducation, DomainHealthTips:
		return true
	}
	return false
}

// LibraryData is a user's bookmark set and reading progress for one content
// domain. Progress values are stored as given; the module does not clamp
// them to [0,100].
type LibraryData struct {
	Bookmarks []string           `json:"bookmarks"`
	Progress  map[string]float64 `json:"progress"`
}

package listing

// Mode is the rendering state of the content listing
type Mode string

const (
	ModeLoading  Mode = "loading"
	ModeNotReady Mode = "notready"
	ModeCreate   Mode = "create"
	ModeList     Mode = "list"
)

// ContentMode decides the listing state once data has loaded.
// A space without content types is not ready; one without any content
// offers the create form.
func ContentMode(contentTypeCount, contentCount int) Mode {
	switch {
	case contentTypeCount == 0:
		return ModeNotReady
	case contentCount == 0:
		return ModeCreate
	default:
		return ModeList
	}
}

// Package host defines the parts of an image viewer the rename action talks
// to. The terminal and desktop viewers implement these interfaces; tests use
// in-memory fakes.
package host

// Image is one file shown by the viewer.
type Image interface {
	// Path is the absolute path of the file.
	Path() string
	// EditName is the file name as shown to and edited by the user.
	EditName() string
}

// Store is the viewer's ordered image collection, sorted ascending by
// EditName under Compare. The store re-sorts itself after a rename.
type Store interface {
	Length() int
	ImageAt(pos int) Image
	// PosByImage returns the position of img, or -1.
	PosByImage(img Image) int
	// SetDisplayName renames img within its directory and returns the
	// renamed image.
	SetDisplayName(img Image, name string) (Image, error)
	IsWritable(img Image) bool
	// Compare orders two edit names the way the store sorts them.
	Compare(a, b string) int
}

// ThumbView holds the viewer's current-image cursor.
type ThumbView interface {
	SetCurrentImage(img Image, scroll bool)
}

// Action is a named command bound to a keyboard accelerator.
type Action struct {
	Name        string
	Accelerator string
	Activate    func()
}

// RenamePrompt describes the rename dialog.
type RenamePrompt struct {
	Title string
	Label string
	// Text pre-fills the entry.
	Text string
	// SelectLen is the number of leading runes of Text to pre-select.
	SelectLen int
	// Forbidden characters are dropped while typing.
	Forbidden string
}

// Window is the viewer window the action is attached to.
type Window interface {
	// Image returns the active image, or nil.
	Image() Image
	Store() Store
	ThumbView() ThumbView

	AddAction(action Action)
	RemoveAction(name string)

	// IdleAdd runs fn on the UI loop once pending updates are processed.
	IdleAdd(fn func())

	// ShowRenameDialog shows a modal name entry and reports the entered
	// name, or ok=false when dismissed.
	ShowRenameDialog(prompt RenamePrompt, done func(name string, ok bool))
	// ShowRetryDialog shows a modal error with "Abort" and "Enter new name"
	// and reports whether the user chose to retry.
	ShowRetryDialog(message string, done func(retry bool))
}

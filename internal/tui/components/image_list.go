package components

import (
	"fmt"
	"strings"

	"picren/internal/host"
	"picren/internal/store"
	"picren/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ImageList shows the store's images and holds the cursor. It is the
// terminal viewer's thumbnail view.
type ImageList struct {
	store  *store.Store
	cursor int
	offset int
	height int
}

var _ host.ThumbView = (*ImageList)(nil)

func NewImageList(s *store.Store) *ImageList {
	return &ImageList{store: s, height: 10}
}

// SetHeight sets the number of visible rows.
func (l *ImageList) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	l.height = h
	l.ensureVisible()
}

func (l *ImageList) Height() int {
	return l.height
}

func (l *ImageList) Cursor() int {
	return l.cursor
}

// Offset is the position of the first visible row.
func (l *ImageList) Offset() int {
	return l.offset
}

// Current returns the image under the cursor, or nil for an empty store.
func (l *ImageList) Current() *store.Image {
	return l.store.At(l.cursor)
}

// SetCursor moves the cursor to pos, clamped to the store, and scrolls it
// into view.
func (l *ImageList) SetCursor(pos int) {
	n := l.store.Length()
	if n == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	l.cursor = pos
	l.ensureVisible()
}

func (l *ImageList) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

// Clamp keeps the cursor inside the store after it shrank.
func (l *ImageList) Clamp() {
	l.SetCursor(l.cursor)
}

// SetCurrentImage moves the cursor to img. Images not in the store are
// ignored.
func (l *ImageList) SetCurrentImage(img host.Image, scroll bool) {
	if img == nil {
		return
	}
	pos := l.store.PosByImage(img)
	if pos < 0 {
		return
	}
	l.cursor = pos
	if scroll {
		l.ensureVisible()
	}
}

func (l *ImageList) ensureVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *ImageList) View() string {
	images := l.store.Images()
	if len(images) == 0 {
		return styles.Theme.Details.Render("No images found") + "\n"
	}

	end := l.offset + l.height
	if end > len(images) {
		end = len(images)
	}
	visible := images[l.offset:end]

	nameWidth := 0
	for _, img := range visible {
		if w := lipgloss.Width(img.EditName()); w > nameWidth {
			nameWidth = w
		}
	}

	var s strings.Builder
	for i, img := range visible {
		style := styles.Theme.Unselected
		cursor := " "
		if l.offset+i == l.cursor {
			style = styles.Theme.Selected
			cursor = ">"
		}

		name := img.EditName()
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(name))
		details := fmt.Sprintf("%8s  %s",
			humanize.Bytes(uint64(img.Size())),
			img.ModTime().Format("2006-01-02 15:04"))

		s.WriteString(fmt.Sprintf("%s %s%s  %s\n",
			cursor,
			style.Render(name),
			pad,
			styles.Theme.Details.Render(details)))
	}
	return s.String()
}

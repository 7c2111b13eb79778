package views

import (
	"fmt"
	"strings"

	"picren/internal/tui/common"
	"picren/internal/tui/styles"
)

// RenderMainView lays out the title, the image list, the current image's
// details, the status bar and the help line. An open dialog replaces the
// details.
func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(renderTitle(m))
	sb.WriteString("\n")
	sb.WriteString(m.ListView())
	sb.WriteString("\n")

	if m.Mode() != common.Browse {
		sb.WriteString(m.DialogView())
		sb.WriteString("\n")
	} else if info := m.Info(); info != "" {
		sb.WriteString(styles.Theme.Details.Render(info))
		sb.WriteString("\n")
	}

	if status := m.StatusView(); status != "" {
		sb.WriteString(status)
		sb.WriteString("\n")
	}
	sb.WriteString(m.HelpView())

	return styles.Theme.App.Render(sb.String())
}

func renderTitle(m common.ModelReader) string {
	count := "1 image"
	if m.Count() != 1 {
		count = fmt.Sprintf("%d images", m.Count())
	}
	return styles.Theme.Title.Render(fmt.Sprintf("picren  %s  (%s)", m.Dir(), count))
}

package components

import (
	"strings"

	"github.com/rivo/tview"

	"ftlview/internal/detail"
	"ftlview/internal/theme"
)

// Sixel region ids used by the item modal.
const (
	RegionAnimation = "modal.animation"
	RegionImage     = "modal.image"
)

const (
	spriteColumnWidth = 26
	spriteHeight      = 13
)

// ModalComponent is the item detail dialog: the modal text on the left
// and, when the item has one, its sprite preview on the right.
type ModalComponent struct {
	wrapper   *tview.Flex
	body      *tview.Flex
	text      *tview.TextView
	sprites   *tview.Flex
	animation *SpriteView
	image     *SpriteView

	modal *detail.Modal
}

// NewModalComponent creates the dialog. layer may be nil when sixel
// output is disabled.
func NewModalComponent(layer *SixelLayer) *ModalComponent {
	text := theme.NewDialogView()
	text.SetBorder(false)
	text.SetScrollable(true)

	animation := NewSpriteView(RegionAnimation, layer).SetFallbackText("no preview")
	animation.SetBorder(true).SetTitle(" Preview ")
	image := NewSpriteView(RegionImage, layer)
	image.SetBorder(true).SetTitle(" Image ")

	sprites := theme.NewFlex().SetDirection(tview.FlexRow)

	body := theme.NewFlex().
		AddItem(text, 0, 1, true).
		AddItem(sprites, 0, 0, false)

	colors := theme.Current().DialogColors()
	wrapper := theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true)
	wrapper.SetBorder(true).
		SetBorderColor(colors.Border).
		SetTitleColor(colors.Title).
		SetBackgroundColor(colors.Background)

	return &ModalComponent{
		wrapper:   wrapper,
		body:      body,
		text:      text,
		sprites:   sprites,
		animation: animation,
		image:     image,
	}
}

// GetWrapper returns the dialog flex
func (mc *ModalComponent) GetWrapper() *tview.Flex {
	return mc.wrapper
}

// Focusable is the scrollable text
func (mc *ModalComponent) Focusable() tview.Primitive {
	return mc.text
}

// Animation is the view of the animated preview
func (mc *ModalComponent) Animation() *SpriteView {
	return mc.animation
}

// Image is the view of the static image layers
func (mc *ModalComponent) Image() *SpriteView {
	return mc.image
}

// Modal returns the modal on display, nil when closed
func (mc *ModalComponent) Modal() *detail.Modal {
	return mc.modal
}

// SetModal shows m, laying out one sprite view per preview it carries.
func (mc *ModalComponent) SetModal(m *detail.Modal) {
	mc.modal = m
	th := theme.Current()
	mc.wrapper.SetTitle(" " + m.Title + " ")
	mc.text.SetText(FormatModal(m, th))
	mc.text.ScrollToBeginning()

	mc.sprites.Clear()
	width := 0
	if m.Animation != nil {
		mc.sprites.AddItem(mc.animation, spriteHeight, 0, false)
		width = spriteColumnWidth
	}
	if len(m.Images) > 0 {
		mc.sprites.AddItem(mc.image, spriteHeight, 0, false)
		width = spriteColumnWidth
	}
	mc.sprites.AddItem(tview.NewBox().SetBackgroundColor(th.DialogColors().Background), 0, 1, false)
	mc.body.ResizeItem(mc.sprites, width, 0)
}

// Close forgets the modal and removes its images from the terminal
func (mc *ModalComponent) Close() {
	mc.modal = nil
	mc.animation.Hide()
	mc.image.Hide()
}

// FormatModal renders the modal as tview text: the "Label: value" grid
// followed by the titled sections.
func FormatModal(m *detail.Modal, th theme.Theme) string {
	colors := th.DialogColors()
	var b strings.Builder

	for _, f := range m.Fields {
		b.WriteString(theme.Colorize(colors.Label, f.Label+":"))
		b.WriteString(" ")
		b.WriteString(tview.Escape(f.Value))
		b.WriteString("\n")
	}

	for _, s := range m.Sections {
		b.WriteString("\n")
		b.WriteString(theme.Colorize(colors.Title, s.Title))
		b.WriteString("\n")
		for _, line := range s.Lines {
			for _, wrapped := range WrapText(line, TextWidth-spriteColumnWidth) {
				b.WriteString(tview.Escape(wrapped))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-playlists/internal/model"
)

// DialogPrompter asks for text with a one-entry form dialog
type DialogPrompter struct {
	window       fyne.Window
	localization *Localization
}

// NewDialogPrompter creates a prompter bound to window
func NewDialogPrompter(window fyne.Window, localization *Localization) *DialogPrompter {
	return &DialogPrompter{window: window, localization: localization}
}

// PromptString shows the form and calls done on a new goroutine once the user
// confirms or dismisses it, so done may block on network calls.
func (p *DialogPrompter) PromptString(title, message string, done func(string, bool)) {
	fyne.Do(func() {
		entry := widget.NewEntry()
		items := []*widget.FormItem{widget.NewFormItem(message, entry)}

		form := dialog.NewForm(
			title,
			p.localization.GetText(KeyOK),
			p.localization.GetText(KeyCancel),
			items,
			func(ok bool) {
				value := entry.Text
				go done(value, ok)
			},
			p.window,
		)
		// Enter submits
		entry.OnSubmitted = func(string) { form.Submit() }
		form.Resize(fyne.NewSize(PromptDialogWidth, form.MinSize().Height))
		form.Show()
		p.window.Canvas().Focus(entry)
	})
}

// DialogNotifier shows notices as information or error dialogs
type DialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window) *DialogNotifier {
	return &DialogNotifier{window: window}
}

// Notify shows the message; error notices use the error dialog
func (n *DialogNotifier) Notify(kind model.NoticeKind, title, message string) {
	fyne.Do(func() {
		if kind.IsError() {
			dialog.ShowError(errors.New(message), n.window)
			return
		}
		dialog.ShowInformation(title, message, n.window)
	})
}

// TextDisplay is the main read-only text area: a word-wrapped label in a
// vertical scroll container
type TextDisplay struct {
	label  *widget.Label
	scroll *container.Scroll
}

// NewTextDisplay creates an empty display
func NewTextDisplay() *TextDisplay {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	return &TextDisplay{
		label:  label,
		scroll: container.NewVScroll(label),
	}
}

// Show replaces the displayed text and scrolls back to the top
func (d *TextDisplay) Show(text string) {
	fyne.Do(func() {
		d.label.SetText(text)
		d.scroll.ScrollToTop()
	})
}

// Text returns the displayed text
func (d *TextDisplay) Text() string {
	return d.label.Text
}

// Container returns the widget to place in a layout
func (d *TextDisplay) Container() fyne.CanvasObject {
	return d.scroll
}

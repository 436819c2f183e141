package ports

// ClipboardWriter copies text to the user's clipboard
type ClipboardWriter interface {
	Copy(text string) error
}

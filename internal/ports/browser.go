package ports

// URLOpener opens a URL in a new browser context
type URLOpener interface {
	Open(url string) error
}

//go:build darwin

package browser

func platformOpenCommand(rawURL string) (string, []string) {
	return "open", []string{rawURL}
}

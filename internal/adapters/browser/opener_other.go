//go:build !linux && !darwin && !windows

package browser

func platformOpenCommand(rawURL string) (string, []string) {
	return "xdg-open", []string{rawURL}
}

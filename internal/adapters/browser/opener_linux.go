//go:build linux

package browser

import "os/exec"

var openCommands = []string{
	"xdg-open",
	"x-www-browser",
	"wslview",
}

func platformOpenCommand(rawURL string) (string, []string) {
	for _, c := range openCommands {
		if _, err := exec.LookPath(c); err == nil {
			return c, []string{rawURL}
		}
	}
	return "xdg-open", []string{rawURL}
}

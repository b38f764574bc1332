//go:build !windows

package util

import (
	"os/exec"
	"runtime"
)

func browserCommand(url string) (*exec.Cmd, error) {
	if err := checkBrowserURL(url); err != nil {
		return nil, err
	}
	if runtime.GOOS == "darwin" {
		return exec.Command("open", url), nil
	}
	return exec.Command("xdg-open", url), nil
}

package util

import (
	"errors"
	"fmt"
	"strings"
)

// OpenBrowser launches the user's default browser with the provided URL.
// Used by `chatrecap serve --open` to jump straight to the report endpoint.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open report in browser: %w", err)
	}
	return nil
}

// checkBrowserURL 只允许打开 http(s) 地址
func checkBrowserURL(url string) error {
	if url == "" {
		return errors.New("empty url")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refuse to open non-http url %q", url)
	}
	return nil
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeURL(t *testing.T) {
	lan := func() string { return "192.168.1.8" }
	none := func() string { return "" }

	assert.Equal(t, "http://192.168.1.8:5031/api/v1/report", ComposeURL("0.0.0.0:5031", "/api/v1/report", lan))
	assert.Equal(t, "http://192.168.1.8:5031/", ComposeURL(":5031", "/", lan))
	assert.Equal(t, "http://127.0.0.1:5031/", ComposeURL("[::]:5031", "/", none))
	assert.Equal(t, "http://127.0.0.1:5031/", ComposeURL("127.0.0.1:5031", "/", lan))
	assert.Equal(t, "http://[fe80::1]:80/", ComposeURL("[fe80::1]:80", "/", lan))
	assert.Equal(t, "http://localhost/x", ComposeURL("localhost", "/x", lan))
}

func TestCheckBrowserURL(t *testing.T) {
	assert.NoError(t, checkBrowserURL("http://127.0.0.1:5031/"))
	assert.Error(t, checkBrowserURL(""))
	assert.Error(t, checkBrowserURL("file:///etc/passwd"))
}

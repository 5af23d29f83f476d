package main

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("snake.example.com")
	if !strings.Contains(page, "ssh -p 2222 snake.example.com") {
		t.Error("SSH host not filled in")
	}
	if strings.Contains(page, "{{.SSHHost}}") {
		t.Error("placeholder left in page")
	}
}

package main

import (
	"errors"
	"os/exec"
	"runtime"
)

// openURL hands target to the desktop's default handler.
func openURL(target string) error {
	if target == "" {
		return errors.New("empty target")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

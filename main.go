package main

import (
	"runtime"

	"chyp8/cmd"
)

var version = "dev"

// GLFW must run on the main thread; only the start command opens a window.
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute(version)
}

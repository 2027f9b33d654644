package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/glmona/gpu"
	"github.com/stewi1014/glmona/programs"
	"github.com/stewi1014/glmona/render"
	"github.com/stewi1014/glmona/window"
)

const debug = false

const (
	windowWidth  = 960
	windowHeight = 540
	windowTitle  = "glMona"
	fragmentPath = programs.DefaultFragmentPath
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Println(err)
		showErrorDialog(err)
		os.Exit(1)
	}
}

func run() error {
	program, err := programs.Load(fragmentPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	win, err := window.New(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer win.Destroy()

	device, err := gpu.New(debug)
	if err != nil {
		return err
	}
	defer device.Destroy()

	controller, err := render.New(device, win, program, windowWidth, windowHeight, render.DefaultOptions())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win.Run(ctx, controller)
	return nil
}

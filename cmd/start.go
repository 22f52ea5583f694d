package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"chyp8/config"
	"chyp8/emu/audio"
	"chyp8/emu/cpu"
	"chyp8/emu/driver"
	"chyp8/emu/window"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 -t 10
func Start(cmd *cobra.Command, args []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	logger := s.Logger()
	romPath := args[0]

	emu := cpu.New(s.CPUOptions(logger)...)
	if err := emu.LoadFile(romPath); err != nil {
		return fmt.Errorf("error starting the Emulator: %w", err)
	}
	logger.Info("Program loaded", log.String("rom", romPath))

	var beeper driver.Beeper
	if !s.Mute {
		spk, err := audio.NewSpeaker(audio.Config{Clip: s.Beep})
		if err != nil {
			// the emulator is still usable without sound
			logger.Error("Audio disabled", log.Err(err))
		} else {
			defer spk.Close()
			beeper = spk
		}
	}

	drv, err := driver.New(emu, beeper, logger, s.Driver())
	if err != nil {
		return err
	}

	// pixelgl.Run initializes GLFW and runs the window loop on the main thread
	pixelgl.Run(func() {
		err = runWindow(s, emu, drv, romPath, logger)
	})
	return err
}

func runWindow(s config.Settings, emu *cpu.EMU, drv *driver.Driver, romPath string, logger *log.Logger) error {
	win, err := window.New(window.Config{
		Title:      "Chyp8",
		Scale:      s.Scale,
		Foreground: s.Foreground,
		Background: s.Background,
	})
	if err != nil {
		return err
	}
	win.OnReset = func() {
		if err := emu.LoadFile(romPath); err != nil {
			logger.Error("Reset failed", log.Err(err))
		}
	}
	win.OnPause = func() {
		drv.SetPaused(!drv.Paused())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := drv.Run(ctx, win); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

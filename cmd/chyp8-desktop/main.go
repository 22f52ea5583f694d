// Command chyp8-desktop runs a ROM in an ebiten window.
package main

import (
	"fmt"
	"os"

	"chyp8/config"
	"chyp8/emu/audio"
	"chyp8/emu/cpu"
	"chyp8/emu/desktop"
	"chyp8/emu/driver"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "chyp8-desktop `path/ROM`",
	Short:        "Chip-8 emulator desktop window",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	config.Flags(rootCmd.Flags())
	config.SetDefaults(viper.GetViper())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if _, err := config.Init(viper.GetViper(), cfgFile, cmd.Flags()); err != nil {
		return err
	}
	s, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger := s.Logger()

	rom, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading program image: %w", err)
	}
	emu := cpu.New(s.CPUOptions(logger)...)
	if err := emu.Load(rom); err != nil {
		return err
	}

	var beeper driver.Beeper
	if !s.Mute {
		spk, err := audio.NewSpeaker(audio.Config{Clip: s.Beep})
		if err != nil {
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

	game := desktop.New(emu, drv, rom, desktop.Config{
		Scale:      int(s.Scale),
		Foreground: s.Foreground,
		Background: s.Background,
	})
	return desktop.Run(game, "Chyp8", s.Refresh)
}

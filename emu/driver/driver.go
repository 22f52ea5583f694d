// Package driver runs an interpreter at a fixed frame rate: a configurable
// number of instructions per frame, timers at 60Hz, sound on/off edges
// forwarded to a Beeper and the display handed to a Frontend.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chyp8/emu/cpu"

	"github.com/retroenv/retrogolib/log"
)

// TimerRate is the fixed delay/sound timer frequency in Hz.
const TimerRate = 60

// Machine is the part of the interpreter the driver needs.
type Machine interface {
	Tick() error
	Gfx() []byte
	SetKey(key int, pressed bool)
	DecrementTimers()
	SoundTimer() uint8
	DrawFlag() bool
	ClearDrawFlag()
}

// Beeper plays a tone while the sound timer is nonzero.
type Beeper interface {
	Start()
	Stop()
}

// Frontend renders the display and reports key state once per frame.
type Frontend interface {
	Closed() bool
	PollKeys(set func(key int, pressed bool))
	Draw(gfx []byte)
	Update()
}

type Config struct {
	Refresh       int // frames per second
	TicksPerFrame int
}

func DefaultConfig() Config {
	return Config{
		Refresh:       60,
		TicksPerFrame: 10,
	}
}

type Driver struct {
	machine Machine
	beeper  Beeper
	logger  *log.Logger
	cfg     Config

	timerDebt int
	beeping   bool
	paused    bool
}

type silence struct{}

func (silence) Start() {}
func (silence) Stop()  {}

// New returns a driver for machine. A nil beeper disables sound.
func New(machine Machine, beeper Beeper, logger *log.Logger, cfg Config) (*Driver, error) {
	if cfg.Refresh <= 0 {
		return nil, fmt.Errorf("invalid refresh rate %d", cfg.Refresh)
	}
	if cfg.TicksPerFrame <= 0 {
		return nil, fmt.Errorf("invalid ticks per frame %d", cfg.TicksPerFrame)
	}
	if beeper == nil {
		beeper = silence{}
	}
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Driver{
		machine: machine,
		beeper:  beeper,
		logger:  logger,
		cfg:     cfg,
	}, nil
}

// Frame executes one frame worth of instructions and decrements the timers
// as many times as 60Hz requires for one frame at the configured refresh.
// Unknown opcode reports are logged and do not stop the frame.
func (d *Driver) Frame() error {
	if d.paused {
		return nil
	}

	for i := 0; i < d.cfg.TicksPerFrame; i++ {
		err := d.machine.Tick()
		if err == nil {
			continue
		}
		if errors.Is(err, cpu.ErrUnknownOpcode) {
			d.logger.Error("Skipping instruction", log.Err(err))
			continue
		}
		d.setSound(false)
		return err
	}

	d.timerDebt += TimerRate
	for d.timerDebt >= d.cfg.Refresh {
		d.machine.DecrementTimers()
		d.timerDebt -= d.cfg.Refresh
	}
	d.setSound(d.machine.SoundTimer() > 0)
	return nil
}

func (d *Driver) setSound(on bool) {
	if on == d.beeping {
		return
	}
	d.beeping = on
	if on {
		d.beeper.Start()
	} else {
		d.beeper.Stop()
	}
}

// SetPaused stops or resumes instruction execution. The tone is silenced
// while paused.
func (d *Driver) SetPaused(paused bool) {
	d.paused = paused
	if paused {
		d.setSound(false)
	}
}

func (d *Driver) Paused() bool {
	return d.paused
}

// Present hands the display to the frontend if it changed.
func (d *Driver) Present(fe Frontend) {
	if !d.machine.DrawFlag() {
		return
	}
	fe.Draw(d.machine.Gfx())
	d.machine.ClearDrawFlag()
}

// Run drives frames at the configured refresh rate until the frontend is
// closed, the context is cancelled or the interpreter faults.
func (d *Driver) Run(ctx context.Context, fe Frontend) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.cfg.Refresh))
	defer ticker.Stop()
	defer d.setSound(false)

	for !fe.Closed() {
		fe.PollKeys(d.machine.SetKey)
		if err := d.Frame(); err != nil {
			return err
		}
		d.Present(fe)
		fe.Update()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

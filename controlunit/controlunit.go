package controlunit

import (
	"context"
	"fmt"

	"github.com/Rookfighter/carrlink/protocol"
)

// ControlUnit drives a single control unit over a Backend. It owns the
// backend for its entire lifetime and performs exactly one
// request/response exchange per operation.
//
// Operations must not be issued concurrently against the same
// ControlUnit; see the package documentation.
type ControlUnit struct {
	backend Backend
	config  Config
}

// New creates a ControlUnit driving the given backend.
//
// Example:
//
//	cu := controlunit.New(backend,
//	    controlunit.WithTimeout(5*time.Second),
//	    controlunit.WithLogger(myLogger),
//	)
func New(backend Backend, opts ...Option) *ControlUnit {
	if backend == nil {
		panic("backend cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ControlUnit{
		backend: backend,
		config:  cfg,
	}
}

// Connect connects the control unit through the configured backend.
func (c *ControlUnit) Connect(ctx context.Context) error {
	return c.backend.Connect(ctx)
}

// Disconnect disconnects the control unit from the configured backend.
func (c *ControlUnit) Disconnect(ctx context.Context) error {
	return c.backend.Disconnect(ctx)
}

// IsConnected reports whether the control unit is currently connected.
func (c *ControlUnit) IsConnected(ctx context.Context) (bool, error) {
	return c.backend.IsConnected(ctx)
}

// GetStatus reads the current status during a race. The control unit
// answers with either a protocol.TrackStatus or a protocol.LapStatus.
func (c *ControlUnit) GetStatus(ctx context.Context) (protocol.Status, error) {
	response, err := c.backend.Request(ctx, protocol.StatusRequest(), c.config.Timeout)
	if err != nil {
		return nil, err
	}

	status, ok := protocol.DecodeStatus(response)
	if !ok {
		c.logDebug("malformed status response", "len", len(response))
		return nil, ErrInvalidResponse
	}
	return status, nil
}

// GetVersion requests the current firmware version of the control unit.
func (c *ControlUnit) GetVersion(ctx context.Context) (string, error) {
	response, err := c.backend.Request(ctx, protocol.VersionRequest(), c.config.Timeout)
	if err != nil {
		return "", err
	}

	version, ok := protocol.DecodeVersion(response)
	if !ok {
		c.logDebug("malformed version response", "len", len(response))
		return "", ErrInvalidResponse
	}
	return version, nil
}

// PressEnter causes a press of the enter button of the control unit.
func (c *ControlUnit) PressEnter(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonEnter)
}

// PressEsc causes a press of the escape button of the control unit.
func (c *ControlUnit) PressEsc(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonEscape)
}

// PressSpeed causes a press of the speed button of the control unit.
func (c *ControlUnit) PressSpeed(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonSpeed)
}

// PressBrake causes a press of the brake button of the control unit.
func (c *ControlUnit) PressBrake(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonBrake)
}

// PressFuel causes a press of the fuel button of the control unit.
func (c *ControlUnit) PressFuel(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonFuel)
}

// PressCode causes a press of the code button of the control unit.
func (c *ControlUnit) PressCode(ctx context.Context) error {
	return c.pressButton(ctx, protocol.ButtonCode)
}

// StartCountdown starts the race countdown. There is no dedicated wire
// command for this: the control unit interprets two sequential enter
// presses as the countdown trigger. If the first press succeeds and the
// second fails, the device is left in the menu state of a single press.
func (c *ControlUnit) StartCountdown(ctx context.Context) error {
	if err := c.PressEnter(ctx); err != nil {
		return err
	}
	return c.PressEnter(ctx)
}

// pressButton simulates a button press with the given button identifier.
func (c *ControlUnit) pressButton(ctx context.Context, button byte) error {
	return c.exchangeEmpty(ctx, "press button", protocol.BuildButtonPressRequest(button))
}

// ResetPositions resets the positions of the players displayed on the
// position tower.
func (c *ControlUnit) ResetPositions(ctx context.Context) error {
	return c.exchangeEmpty(ctx, "reset positions", protocol.BuildResetPositionsRequest())
}

// ResetClock resets the clock for all players.
func (c *ControlUnit) ResetClock(ctx context.Context) error {
	return c.exchangeEmpty(ctx, "reset clock", protocol.BuildResetClockRequest())
}

// SetSpeedLevel sets the speed level of the given player. The level is
// not validated: the wire encoding truncates it to 4 bits, so values
// outside [0, 15] wrap silently.
func (c *ControlUnit) SetSpeedLevel(ctx context.Context, player, level int) error {
	return c.exchangeEmpty(ctx, "set speed level",
		protocol.BuildSetSpeedLevelRequest(byte(player), byte(level)))
}

// SetBrakeLevel sets the brake level of the given player. The level is
// not validated: the wire encoding truncates it to 4 bits, so values
// outside [0, 15] wrap silently.
func (c *ControlUnit) SetBrakeLevel(ctx context.Context, player, level int) error {
	return c.exchangeEmpty(ctx, "set brake level",
		protocol.BuildSetBrakeLevelRequest(byte(player), byte(level)))
}

// SetFuelLevel sets the fuel level of the given player. The level is not
// validated: the wire encoding truncates it to 4 bits, so values outside
// [0, 15] wrap silently.
func (c *ControlUnit) SetFuelLevel(ctx context.Context, player, level int) error {
	return c.exchangeEmpty(ctx, "set fuel level",
		protocol.BuildSetFuelLevelRequest(byte(player), byte(level)))
}

// SetLap sets the lap currently displayed by the position tower.
//
// The lap number is written as two sequential exchanges, high nibble
// first. The operation is not transactional: if the first exchange
// succeeds and the second fails, the device keeps the new high nibble
// and the old low nibble. SetLap returns at the first error without
// attempting the second exchange.
func (c *ControlUnit) SetLap(ctx context.Context, lap int) error {
	if err := c.setLapHigh(ctx, lap); err != nil {
		return err
	}
	return c.setLapLow(ctx, lap)
}

func (c *ControlUnit) setLapHigh(ctx context.Context, lap int) error {
	return c.exchangeEmpty(ctx, "set lap high", protocol.BuildSetLapHighRequest(byte(lap)>>4))
}

func (c *ControlUnit) setLapLow(ctx context.Context, lap int) error {
	return c.exchangeEmpty(ctx, "set lap low", protocol.BuildSetLapLowRequest(byte(lap)&0x0F))
}

// exchangeEmpty performs one exchange for a write-only command and
// validates the echo acknowledgement.
func (c *ControlUnit) exchangeEmpty(ctx context.Context, op string, request []byte) error {
	response, err := c.backend.Request(ctx, request, c.config.Timeout)
	if err != nil {
		return err
	}

	if !protocol.DecodeEmpty(request, response) {
		c.logDebug("missing acknowledgement", "op", op,
			"request", fmt.Sprintf("% X", request),
			"response", fmt.Sprintf("% X", response))
		return ErrInvalidResponse
	}

	c.logDebug("acknowledged", "op", op)
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (c *ControlUnit) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

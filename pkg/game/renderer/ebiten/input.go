package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	engineinput "cvquest/pkg/engine/input"
	"cvquest/pkg/engine/world"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// pressKeys fire once per press
var pressKeys = []keyCode{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyI, "i"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF9, "f9"},
}

// holdKeys steer for as long as they are down
var holdKeys = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
}

type padButton struct {
	button ebiten.StandardGamepadButton
	code   string
}

var padHoldButtons = []padButton{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
}

var padPressButtons = []padButton{
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// Update reads input and advances the scene one tick (Ebiten interface).
// Input is applied before the scene updates, so a click lands this frame.
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened", zap.Int("width", w), zap.Int("height", h))
	}

	select {
	case <-e.ctx.Done():
		return ebiten.Termination
	default:
	}

	for _, intent := range e.checkInput() {
		e.scene.ProcessIntent(intent)
	}
	e.scene.SetHeld(engineinput.DirectionFromHeld(e.heldActions()))
	e.scene.Update(time.Second / time.Duration(ebiten.TPS()))

	if e.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

// checkInput collects this frame's one-shot intents from keyboard, mouse,
// touch and gamepad.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	emit := func(device engineinput.Device, code string, p world.Vec) {
		intent := engineinput.Translate(engineinput.RawInput{
			Device:    device,
			Code:      code,
			Point:     p,
			Timestamp: time.Now(),
		})
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		emit(engineinput.DeviceKeyboard, "ctrl_c", world.Vec{})
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			emit(engineinput.DeviceKeyboard, k.code, world.Vec{})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		emit(engineinput.DevicePointer, "pointer", e.screenToWorld(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		emit(engineinput.DevicePointer, "pointer", e.screenToWorld(x, y))
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range padPressButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				emit(engineinput.DeviceGamepad, b.code, world.Vec{})
			}
		}
	}
	return intents
}

// heldActions reports which movement actions are held down right now
func (e *EbitenRenderer) heldActions() map[engineinput.Action]bool {
	held := make(map[engineinput.Action]bool, 4)
	mark := func(code string) {
		if a := engineinput.Translate(engineinput.RawInput{Code: code}).Action; engineinput.IsMovement(a) {
			held[a] = true
		}
	}

	for _, k := range holdKeys {
		if ebiten.IsKeyPressed(k.key) {
			mark(k.code)
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range padHoldButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
				mark(b.code)
			}
		}
	}
	return held
}

// screenToWorld maps a window pixel to a world position through the camera
func (e *EbitenRenderer) screenToWorld(x, y int) world.Vec {
	return world.Vec{X: float64(x), Y: float64(y)}.Add(e.camera)
}

package wizard

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/predator-rgb/internal/config"
	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/logging"
	"github.com/muurk/predator-rgb/internal/ui"
)

// step is one state of the prompt sequence.
type step int

const (
	stepMode step = iota
	stepZones
	stepSpeed
	stepBrightness
	stepDirection
	stepColor
	stepDryRun
	stepConfirm
	stepDone
)

var stepNames = map[step]string{
	stepMode:       "mode",
	stepZones:      "zones",
	stepSpeed:      "speed",
	stepBrightness: "brightness",
	stepDirection:  "direction",
	stepColor:      "color",
	stepDryRun:     "dry-run",
	stepConfirm:    "confirm",
}

// Prompts
const (
	promptMode       = "Choose lighting mode (static, wave, etc.)"
	promptZones      = "Specify zones (0 for all, or comma-separated for specific zones)"
	promptSpeed      = "Lighting speed (0-9)"
	promptBrightness = "Brightness (0-100)"
	promptDirection  = "Direction (left-to-right or right-to-left)"
	promptColor      = "Specify color (#rrggbb, #rgb, rrggbb, or r,g,b)"
	promptDryRun     = "Debug mode? (y/N)"
	promptConfirm    = "Apply these settings? (Y/n)"
)

// InitialSettings returns the first-round defaults offered by the wizard.
func InitialSettings() *config.Settings {
	s := config.DefaultSettings()
	s.Red, s.Green, s.Blue = 50, 255, 50
	return s
}

// Prompter collects settings one question at a time.
type Prompter struct {
	in      LineReader
	printer *ui.Printer
}

// New creates a prompter reading answers from in and printing to printer.
func New(in LineReader, printer *ui.Printer) *Prompter {
	return &Prompter{in: in, printer: printer}
}

// Run asks every question until the user confirms, starting from
// InitialSettings. On rejection the sequence restarts with the rejected
// answers as defaults.
func (p *Prompter) Run() (*config.Settings, error) {
	return p.RunFrom(InitialSettings())
}

// RunFrom is Run with caller-supplied first-round defaults.
func (p *Prompter) RunFrom(defaults *config.Settings) (*config.Settings, error) {
	draft := defaults.Clone()
	draft.Color = ""

	current := stepMode
	for current != stepDone {
		next, err := p.ask(current, draft)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return draft, nil
}

// ask handles one step, returning the step to go to next. A bad answer
// reports the error and returns the same step.
func (p *Prompter) ask(current step, draft *config.Settings) (step, error) {
	switch current {
	case stepMode:
		return p.answer(current, promptMode, draft.Mode.String(), func(in string) error {
			mode, err := lighting.ParseMode(in)
			if err != nil {
				return err
			}
			draft.Mode = mode
			return nil
		}, stepZones)

	case stepZones:
		next := stepSpeed
		if draft.Mode.IsStatic() {
			next = stepColor
		}
		return p.answer(current, promptZones, lighting.FormatZones(draft.Zones), func(in string) error {
			raw, err := lighting.ParseZones(in)
			if err != nil {
				return err
			}
			zones := make([]int, len(raw))
			for i, z := range raw {
				zones[i] = int(z)
			}
			if _, err := lighting.ExpandZones(zones); err != nil {
				return err
			}
			draft.Zones = zones
			return nil
		}, next)

	case stepSpeed:
		return p.answer(current, promptSpeed, fmt.Sprint(draft.Speed), func(in string) error {
			v, err := lighting.ParseRangedUint8(in, "Speed", 0, lighting.MaxSpeed)
			if err != nil {
				return err
			}
			draft.Speed = int(v)
			return nil
		}, stepBrightness)

	case stepBrightness:
		return p.answer(current, promptBrightness, fmt.Sprint(draft.Brightness), func(in string) error {
			v, err := lighting.ParseRangedUint8(in, "Brightness", 0, lighting.MaxBrightness)
			if err != nil {
				return err
			}
			draft.Brightness = int(v)
			return nil
		}, stepDirection)

	case stepDirection:
		return p.answer(current, promptDirection, draft.Direction.String(), func(in string) error {
			d, err := lighting.ParseDirection(in)
			if err != nil {
				return err
			}
			draft.Direction = d
			return nil
		}, stepColor)

	case stepColor:
		def := fmt.Sprintf("%d,%d,%d", draft.Red, draft.Green, draft.Blue)
		return p.answer(current, promptColor, def, func(in string) error {
			c, err := lighting.ParseColor(in)
			if err != nil {
				return err
			}
			draft.Red, draft.Green, draft.Blue = c.Red, c.Green, c.Blue
			return nil
		}, stepDryRun)

	case stepDryRun:
		def := "N"
		if draft.DryRun {
			def = "y"
		}
		next, err := p.answer(current, promptDryRun, def, func(in string) error {
			v, err := lighting.ParseConfirmation(in)
			if err != nil {
				return err
			}
			draft.DryRun = v
			return nil
		}, stepConfirm)
		if err == nil && next == stepConfirm {
			p.review(draft)
		}
		return next, err

	case stepConfirm:
		var apply bool
		next, err := p.answer(current, promptConfirm, "Y", func(in string) error {
			v, err := lighting.ParseConfirmation(in)
			apply = v
			return err
		}, stepDone)
		if err != nil || next != stepDone {
			return next, err
		}
		if !apply {
			p.printer.PrintNotice("Let's try again!")
			return stepMode, nil
		}
		return stepDone, nil
	}

	return stepDone, fmt.Errorf("unknown wizard step %d", current)
}

// answer reads one line and applies it. On a parse error the error is shown
// and the same step is returned.
func (p *Prompter) answer(current step, prompt, def string, apply func(string) error, next step) (step, error) {
	line, err := p.in.ReadLine(prompt, def)
	if err != nil {
		return current, err
	}

	if err := apply(line); err != nil {
		logging.Debug("Rejected wizard answer",
			zap.String("step", stepNames[current]),
			zap.String("input", line),
			zap.Error(err),
		)
		p.printer.Println(ui.ErrorMessageStyle.Render(err.Error()))
		return current, nil
	}
	return next, nil
}

// review applies the static fallbacks, then prints the preview (static mode
// only) and the collected values.
func (p *Prompter) review(draft *config.Settings) {
	if draft.Mode.IsStatic() {
		draft.Speed = config.DefaultSpeed
		draft.Brightness = config.DefaultBrightness
		draft.Direction = lighting.DirectionLeftToRight

		zones, err := lighting.ExpandZones(draft.Zones)
		if err == nil {
			p.printer.PrintPreview(zones, draft.RGB())
		}
	}

	p.printer.Newline()
	p.printer.PrintFields("Here are the selected arguments:", []ui.Field{
		{Key: "Mode", Value: draft.Mode.String()},
		{Key: "Zones", Value: lighting.FormatZones(draft.Zones)},
		{Key: "Speed", Value: fmt.Sprint(draft.Speed)},
		{Key: "Brightness", Value: fmt.Sprint(draft.Brightness)},
		{Key: "Direction", Value: draft.Direction.String()},
		{Key: "Color", Value: draft.RGB().String()},
	})
}

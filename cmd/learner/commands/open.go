// cmd/learner/commands/open.go
package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tamzrod/ir-learner/internal/config"
	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
	"github.com/tamzrod/ir-learner/internal/medium"
	"github.com/tamzrod/ir-learner/internal/store"
)

// openStore loads the config, connects the medium and probes it once.
// The returned closer is never nil.
func openStore(ctx context.Context) (*config.Config, *store.Store, func() error, error) {
	nop := func() error { return nil }

	cfg, err := config.LoadValid(configPath)
	if err != nil {
		return nil, nil, nop, err
	}

	geo, err := layout.NewGeometry(cfg.Learner.Layout.Remotes)
	if err != nil {
		return nil, nil, nop, err
	}

	m, closeMedium, err := medium.Build(ctx, cfg.Learner.Medium)
	if err != nil {
		return nil, nil, nop, fmt.Errorf("medium %s: %w", cfg.Learner.Medium.Kind, err)
	}

	st, err := store.New(geo, m)
	if err != nil {
		_ = closeMedium()
		return nil, nil, nop, err
	}

	if err := st.Check(); err != nil {
		_ = closeMedium()
		return nil, nil, nop, fmt.Errorf("medium %s not reachable: %w", cfg.Learner.Medium.Kind, err)
	}

	return cfg, st, closeMedium, nil
}

func timing(t config.TimingConfig) controller.Timing {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return controller.Timing{
		PollInterval:    ms(t.PollIntervalMs),
		CaptureInterval: ms(t.CaptureIntervalMs),
		Debounce:        ms(t.DebounceMs),
		TransmitGap:     ms(t.TransmitGapMs),
	}
}

// ---- argument parsing ----

func parseRemote(geo layout.Geometry, s string) (layout.RemoteSlot, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return layout.RemoteSlot{}, fmt.Errorf("remote %q is not a number", s)
	}
	r, ok := geo.Remote(n)
	if !ok {
		return layout.RemoteSlot{}, fmt.Errorf("remote %d out of range 0..%d", n, geo.Remotes()-1)
	}
	return r, nil
}

// parseButton accepts a key character (0-9, A-L) or a slot number.
func parseButton(s string) (layout.ButtonSlot, error) {
	if len(s) == 1 {
		if b, ok := keys.ParseButton(s[0]); ok {
			return b, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return layout.ButtonSlot{}, fmt.Errorf("button %q is neither a key nor a slot number", s)
	}
	b, ok := layout.Button(n)
	if !ok {
		return layout.ButtonSlot{}, fmt.Errorf("button %d out of range 0..%d", n, layout.LastSlot)
	}
	return b, nil
}

func parseCode(s string) (layout.RawCode, error) {
	hex := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("code %q is not a 32-bit hex value", s)
	}
	return layout.RawCode(v), nil
}

// keyLabel is how a slot is typed on the keypad.
func keyLabel(b layout.ButtonSlot) string {
	return string(keys.ButtonKey(b).Char())
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/streax/internal/contract"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/spf13/pflag"
)

// timeframeValue is a pflag.Value restricted to the insight timeframes.
type timeframeValue struct {
	tf *contract.Timeframe
}

func (v *timeframeValue) String() string {
	if v.tf == nil {
		return ""
	}
	return string(*v.tf)
}

func (v *timeframeValue) Set(s string) error {
	tf, ok := contract.ParseTimeframe(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return fmt.Errorf("must be one of day, week, month, all, custom")
	}
	*v.tf = tf
	return nil
}

func (v *timeframeValue) Type() string { return "timeframe" }

func timeframeFlag(fs *pflag.FlagSet, p *contract.Timeframe, def contract.Timeframe) {
	*p = def
	fs.Var(&timeframeValue{tf: p}, "timeframe", "day, week, month, all or custom")
}

// presetValue accepts a preset index or a name prefix such as "classic".
type presetValue struct {
	idx *int
}

func (v *presetValue) String() string {
	if v.idx == nil {
		return ""
	}
	p, err := timer.PresetAt(*v.idx)
	if err != nil {
		return strconv.Itoa(*v.idx)
	}
	return p.Name
}

func (v *presetValue) Set(s string) error {
	i, err := timer.FindPreset(s)
	if err != nil {
		return err
	}
	*v.idx = i
	return nil
}

func (v *presetValue) Type() string { return "preset" }

func presetFlag(fs *pflag.FlagSet, p *int) {
	*p = timer.DefaultPreset
	names := make([]string, 0, len(timer.Presets()))
	for _, pr := range timer.Presets() {
		names = append(names, pr.Name)
	}
	fs.Var(&presetValue{idx: p}, "preset", "Timer preset: "+strings.Join(names, ", "))
}

func dateFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "date", "", "Day as YYYY-MM-DD (default today)")
}

func yesFlag(fs *pflag.FlagSet, p *bool) {
	fs.BoolVarP(p, "yes", "y", false, "Skip the confirmation prompt")
}

// checkDate validates an optional --date value.
func checkDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := domain.ParseDate(s)
	return err
}

package signup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenflowhq/greenflow/internal/catalog"
	"github.com/greenflowhq/greenflow/internal/session"
)

func TestCycleValue(t *testing.T) {
	options := []string{"AED", "USD", "EUR", "GBP"}

	tests := []struct {
		name    string
		current string
		delta   int
		want    string
	}{
		{"forward", "AED", 1, "USD"},
		{"backward wraps", "AED", -1, "GBP"},
		{"forward wraps", "GBP", 1, "AED"},
		{"unknown lands on first", "JPY", 1, "AED"},
		{"unset lands on first", "", 1, "AED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cycleValue(options, tt.current, tt.delta))
		})
	}
}

func TestResolveCycle(t *testing.T) {
	cat := catalog.Default()
	cfg := session.Default() // industry unset, currency AED

	t.Run("industry from unset", func(t *testing.T) {
		msg, ok := resolveCycle(cat, cfg, cycleRequestMsg{focus: focusIndustry, delta: 1})
		require.True(t, ok)
		require.Equal(t, session.FieldIndustry, msg.Field)
		require.Equal(t, "ecommerce", msg.Value)
	})

	t.Run("currency backward wraps", func(t *testing.T) {
		msg, ok := resolveCycle(cat, cfg, cycleRequestMsg{focus: focusCurrency, delta: -1})
		require.True(t, ok)
		require.Equal(t, session.FieldCurrency, msg.Field)
		require.Equal(t, "GBP", msg.Value)
	})

	t.Run("non-cycler focus resolves nothing", func(t *testing.T) {
		_, ok := resolveCycle(cat, cfg, cycleRequestMsg{focus: focusEmail, delta: 1})
		require.False(t, ok)
	})
}

func TestProfileStepSeedsFromSnapshot(t *testing.T) {
	cfg := session.Default().
		WithField(session.FieldFirstName, "Jane").
		WithField(session.FieldCompany, "Acme")

	step := NewProfileStep(catalog.Default(), cfg)

	require.Equal(t, "Jane", step.inputs[0].Value())
	require.Equal(t, "Acme", step.inputs[4].Value())
}

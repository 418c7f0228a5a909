package record

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysNested(t *testing.T) {
	obj := map[string]any{
		"id": "x",
		"score": map[string]any{
			"pass":  true,
			"score": 1.0,
		},
		"trials": []any{
			map[string]any{"output": "a", "pass": true},
			map[string]any{"other": "ignored"},
		},
		"empty": []any{},
		"nums":  []any{1.0, 2.0},
	}

	keys := Keys(obj)
	sort.Strings(keys)
	require.Equal(t, []string{
		"empty",
		"id",
		"nums",
		"score",
		"score.pass",
		"score.score",
		"trials",
		"trials[].output",
		"trials[].pass",
	}, keys)
}

func TestKeysSamplesFirstArrayElementOnly(t *testing.T) {
	obj := map[string]any{
		"trials": []any{
			map[string]any{"a": 1.0},
			map[string]any{"b": 2.0},
		},
	}
	keys := Keys(obj)
	sort.Strings(keys)
	require.Equal(t, []string{"trials", "trials[].a"}, keys)
}

func TestKeysEmpty(t *testing.T) {
	require.Empty(t, Keys(map[string]any{}))
}

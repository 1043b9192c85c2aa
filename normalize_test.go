package wirelens

import (
	"context"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
)

type samplerKind int

const (
	samplerEuler samplerKind = iota
	samplerDPM
)

type noiseSettings struct {
	churn float64
	tmin  float64
}

func (n noiseSettings) Fields() map[string]any {
	return map[string]any{"s_churn": n.churn, "s_tmin": n.tmin}
}

func TestNormalize(t *testing.T) {
	ctx := context.Background()

	t.Run("scalars pass through", func(t *testing.T) {
		cases := []any{nil, true, false, "prompt", 20, int64(-1), uint8(7), 1.5}
		for _, in := range cases {
			if out := Normalize(ctx, in); !reflect.DeepEqual(out, in) {
				t.Errorf("Normalize(%v) = %v, want unchanged", in, out)
			}
		}
	})

	t.Run("idempotence", func(t *testing.T) {
		doc := map[string]any{
			"prompt": "cat",
			"steps":  20,
			"styles": []any{"anime", "photo"},
			"nested": map[string]any{"cfg_scale": 7.5, "enabled": true},
			"empty":  nil,
		}
		once := Normalize(ctx, doc)
		twice := Normalize(ctx, once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalization is not idempotent: %v vs %v", once, twice)
		}
	})

	t.Run("no non-finite leakage", func(t *testing.T) {
		doc := map[string]any{
			"inf":     math.Inf(1),
			"neg_inf": math.Inf(-1),
			"nan":     math.NaN(),
			"nested":  []any{math.Inf(1), 1.0},
		}
		out := Normalize(ctx, doc).(map[string]any)
		for _, key := range []string{"inf", "neg_inf", "nan"} {
			if out[key] != nil {
				t.Errorf("expected %s to collapse to nil, got %v", key, out[key])
			}
		}
		if _, err := Format(Payload(out)); err != nil {
			t.Errorf("normalized payload must always format: %v", err)
		}
	})

	t.Run("typed slices and maps", func(t *testing.T) {
		out := Normalize(ctx, []string{"a", "b"})
		if !reflect.DeepEqual(out, []any{"a", "b"}) {
			t.Errorf("expected []any sequence, got %#v", out)
		}

		mapped := Normalize(ctx, map[int]string{1: "one"}).(map[string]any)
		if mapped["1"] != "one" {
			t.Errorf("expected stringified key, got %v", mapped)
		}
	})

	t.Run("enumerated constants reduce to underlying value", func(t *testing.T) {
		out := Normalize(ctx, samplerDPM)
		if out != int64(samplerDPM) {
			t.Errorf("expected underlying int64, got %v (%T)", out, out)
		}
	})

	t.Run("field enumerable sub-objects", func(t *testing.T) {
		out := Normalize(ctx, noiseSettings{churn: 0.5, tmin: 0.1}).(map[string]any)
		if out["s_churn"] != 0.5 || out["s_tmin"] != 0.1 {
			t.Errorf("expected enumerated fields, got %v", out)
		}
	})

	t.Run("pointers", func(t *testing.T) {
		steps := 20
		if out := Normalize(ctx, &steps); out != 20 {
			t.Errorf("expected deref to 20, got %v", out)
		}
		var absent *int
		if out := Normalize(ctx, absent); out != nil {
			t.Errorf("expected nil for nil pointer, got %v", out)
		}
	})

	t.Run("raster becomes data url", func(t *testing.T) {
		raster := NewRaster(2, 2, 3)
		out := Normalize(ctx, raster)
		url, ok := out.(string)
		if !ok || !strings.HasPrefix(url, DataURLPrefix) {
			t.Errorf("expected data URL, got %v", out)
		}
	})

	t.Run("unconvertible leaf degrades to nil", func(t *testing.T) {
		var wg sync.WaitGroup
		var typeReceived string

		wg.Add(1)
		listener := capitan.Hook(NormalizeUnsupported, func(_ context.Context, e *capitan.Event) {
			defer wg.Done()
			typeReceived, _ = ValueTypeKey.From(e)
		})
		defer listener.Close()

		out := Normalize(ctx, make(chan int))
		if out != nil {
			t.Errorf("expected nil for unconvertible value, got %v", out)
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for unsupported-value event")
		}

		if typeReceived != "chan int" {
			t.Errorf("expected value type 'chan int', got %q", typeReceived)
		}
	})

	t.Run("plain structs are not introspected", func(t *testing.T) {
		// Sub-objects opt in via FieldEnumerable; anything else degrades.
		type opaque struct{ hidden int }
		if out := Normalize(ctx, opaque{hidden: 1}); out != nil {
			t.Errorf("expected nil for plain struct, got %v", out)
		}
	})
}

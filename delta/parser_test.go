package delta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/timerange/delta"
)

func TestParser(t *testing.T) {
	t.Run("From", func(t *testing.T) {
		tests := []struct {
			name   string
			input  string
			errStr string
			value  delta.Delta
		}{
			{
				name:   "returns error when invalid unit",
				input:  "5g",
				errStr: "invalid value for unit g, accepted values are [ns,s,m,h,d,w,M,y]",
				value:  delta.Delta{},
			},
			{
				name:   "returns error when invalid count",
				input:  "gh",
				errStr: "parsing \"g\": invalid syntax",
				value:  delta.Delta{},
			},
			{
				name:  "returns zero delta when None",
				input: "None",
				value: delta.Delta{},
			},
			{
				name:  "returns zero delta when empty",
				input: "",
				value: delta.Delta{},
			},
			{
				name:  "returns hourly delta",
				input: "5h",
				value: delta.New(5, delta.Hour),
			},
			{
				name:  "returns negative hourly delta",
				input: "-6h",
				value: delta.New(-6, delta.Hour),
			},
			{
				name:  "returns minute delta",
				input: "90m",
				value: delta.New(90, delta.Minute),
			},
			{
				name:  "returns second delta",
				input: "30s",
				value: delta.New(30, delta.Second),
			},
			{
				name:  "returns nanosecond delta",
				input: "100ns",
				value: delta.New(100, delta.Nano),
			},
			{
				name:  "returns daily delta",
				input: "3d",
				value: delta.New(3, delta.Day),
			},
			{
				name:  "returns weekly delta",
				input: "2w",
				value: delta.New(2, delta.Week),
			},
			{
				name:  "returns monthly delta",
				input: "3M",
				value: delta.New(3, delta.Month),
			},
			{
				name:  "returns yearly delta",
				input: "2y",
				value: delta.New(2, delta.Year),
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				final, err := delta.From(tt.input)
				if err != nil {
					assert.ErrorContains(t, err, tt.errStr)
				} else {
					assert.Equal(t, tt.value, final)
				}
			})
		}
	})
	t.Run("Validate", func(t *testing.T) {
		t.Run("returns error when invalid", func(t *testing.T) {
			err := delta.Validate("5q")
			assert.Error(t, err)
			assert.ErrorContains(t, err, "invalid string for delta 5q")
		})
		t.Run("returns no error when valid", func(t *testing.T) {
			values := []string{"None", "5d", "3h", "6M", "2w", "30s", "-90m", "100ns"}
			for _, v := range values {
				err := delta.Validate(v)
				assert.NoError(t, err)
			}
		})
	})
	t.Run("UnitFrom", func(t *testing.T) {
		t.Run("returns error when invalid unit", func(t *testing.T) {
			_, err := delta.UnitFrom("invalid")
			assert.Error(t, err)
			assert.ErrorContains(t, err, "invalid value for unit invalid, accepted values are [ns,s,m,h,d,w,M,y]")
		})
		t.Run("returns valid unit when correct input", func(t *testing.T) {
			values := []string{"None", "ns", "s", "m", "h", "d", "w", "M", "y"}
			for _, v := range values {
				u, err := delta.UnitFrom(v)
				assert.NoError(t, err)
				assert.Equal(t, string(u), v)
			}
		})
	})
	t.Run("CountFrom", func(t *testing.T) {
		t.Run("returns error when invalid", func(t *testing.T) {
			_, err := delta.CountFrom("invalid")
			assert.Error(t, err)
			assert.ErrorContains(t, err, "parsing \"invalid\": invalid syntax")
		})
		t.Run("returns count when valid", func(t *testing.T) {
			count, err := delta.CountFrom("5")
			assert.NoError(t, err)
			assert.Equal(t, 5, count)
		})
		t.Run("returns count when negative number", func(t *testing.T) {
			count, err := delta.CountFrom("-5")
			assert.NoError(t, err)
			assert.Equal(t, -5, count)
		})
	})
}

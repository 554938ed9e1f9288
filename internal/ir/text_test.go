package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y int }

func (p point) String() string { return "point" }

func TestText(t *testing.T) {
	var nilPtr *int
	var nilErr error
	var nilStrPtr *Str

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "null"},
		{"nil pointer", nilPtr, "null"},
		{"nil interface", nilErr, "null"},
		{"nil Str pointer", nilStrPtr, "null"},
		{"absent Str", None(), "null"},
		{"present Str", Some("x"), "x"},
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"float", 2.5, "2.5"},
		{"integral float", 3.0, "3"},
		{"bool", true, "true"},
		{"stringer", point{1, 2}, "point"},
		{"error", errors.New("boom"), "boom"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

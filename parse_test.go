// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pigmentlab/pigment/colornames"
)

func TestFromHex6(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		{"#AB34DF", color.RGBA{171, 52, 223, 255}, nil},
		{"ab34df", color.RGBA{171, 52, 223, 255}, nil},
		{"  #ab34df\t", color.RGBA{171, 52, 223, 255}, nil},
		{"#000000", color.RGBA{0, 0, 0, 255}, nil},
		{"ffffff", color.RGBA{255, 255, 255, 255}, nil},
		{"ab34d", color.RGBA{}, ErrFormat},
		{"#ab34df0", color.RGBA{}, ErrFormat},
		{"#ag34df", color.RGBA{}, ErrFormat},
		{"##ab34df", color.RGBA{}, ErrFormat},
		{"", color.RGBA{}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromHex6(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFromHex3(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		{"#a3d", color.RGBA{170, 51, 221, 255}, nil},
		{"A3D", color.RGBA{170, 51, 221, 255}, nil},
		{"fff", color.RGBA{255, 255, 255, 255}, nil},
		{" #000 ", color.RGBA{0, 0, 0, 255}, nil},
		{"#a3", color.RGBA{}, ErrFormat},
		{"#a3dd", color.RGBA{}, ErrFormat},
		{"#g3d", color.RGBA{}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromHex3(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFromRGBInt(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		{"rgb(171, 52, 223)", color.RGBA{171, 52, 223, 255}, nil},
		{"rgb(171,52,223)", color.RGBA{171, 52, 223, 255}, nil},
		{"rgb( 171 ,  52 ,\t223 )", color.RGBA{171, 52, 223, 255}, nil},
		{"  rgb(0, 0, 0)", color.RGBA{0, 0, 0, 255}, nil},
		{"rgb(255, 255, 255)", color.RGBA{255, 255, 255, 255}, nil},
		{"rgb(256, 0, 0)", color.RGBA{}, ErrFormat},
		{"rgb(1711, 0, 0)", color.RGBA{}, ErrFormat},
		{"rgb(-1, 0, 0)", color.RGBA{}, ErrFormat},
		{"rgb(1, 2)", color.RGBA{}, ErrFormat},
		{"rgb(1, 2, 3", color.RGBA{}, ErrFormat},
		{"RGB(1, 2, 3)", color.RGBA{}, ErrFormat},
		{"rgb(1.0, 2, 3)", color.RGBA{}, ErrFormat},
		{"rgb(1 2, 2, 3)", color.RGBA{}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromRGBInt(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFromRGBFloat(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		// 0.67*255 = 170.85, 0.2*255 = 51, 0.87*255 = 221.85
		{"rgb(0.67, 0.2, 0.87)", color.RGBA{171, 51, 222, 255}, nil},
		{"rgb(0.0, 0.0, 0.0)", color.RGBA{0, 0, 0, 255}, nil},
		{"rgb(1.0, 1.0, 1.0)", color.RGBA{255, 255, 255, 255}, nil},
		{"rgb( 0.5 , 0.5 , 0.5 )", color.RGBA{128, 128, 128, 255}, nil},
		{"rgb(1.5, 0.0, 0.0)", color.RGBA{}, ErrFormat},
		{"rgb(2.0, 0.0, 0.0)", color.RGBA{}, ErrFormat},
		{"rgb(.5, .5, .5)", color.RGBA{}, ErrFormat},
		{"rgb(0, 0, 0)", color.RGBA{}, ErrFormat},
		{"rgb(0.5, 0.5)", color.RGBA{}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromRGBFloat(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFromRGBPercent(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		// 67*2.55 = 170.85, 20*2.55 = 51, 87.5*2.55 = 223.125
		{"rgb(67%, 20%, 87.5%)", color.RGBA{171, 51, 223, 255}, nil},
		{"rgb(0%, 0%, 0%)", color.RGBA{0, 0, 0, 255}, nil},
		{"rgb(100%, 100%, 100%)", color.RGBA{255, 255, 255, 255}, nil},
		{"rgb( 50% , 50% , 50% )", color.RGBA{128, 128, 128, 255}, nil},
		{"rgb(101%, 0%, 0%)", color.RGBA{}, ErrFormat},
		{"rgb(67, 20, 87)", color.RGBA{}, ErrFormat},
		{"rgb(67%, 20%, 87)", color.RGBA{}, ErrFormat},
		{"rgb(67 %, 20%, 87%)", color.RGBA{}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromRGBPercent(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestFromName(t *testing.T) {
	c, err := FromNameCSS("RED")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromNameCSS("  rebeccapurple ")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{102, 51, 153, 255}, c)

	_, err = FromNameCSS("notacolor")
	assert.ErrorIs(t, err, ErrUnknownName)

	c, err = FromNameCrayola("Macaroni and Cheese")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 189, 136, 255}, c)

	c, err = FromNameXKCD("cloudy blue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{172, 194, 217, 255}, c)

	c, err = FromNameMeodaiBest("Cosmic Latte")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 248, 231, 255}, c)

	c, err = FromNameMeodai("zombie moss")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{122, 138, 90, 255}, c)

	_, err = FromNameMeodai("")
	assert.ErrorIs(t, err, ErrUnknownName)
}

// Name lookups delegate to the hex6 parser, so table values may carry a
// leading # and malformed values fail at lookup, not at load.
func TestFromTableDelegation(t *testing.T) {
	tbl := colornames.New("test", map[string]string{
		"Prefixed": "#ff8000",
		"broken":   "xyzzy!",
	})

	c, err := fromTable(tbl, "FromNameTest", "prefixed")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	_, err = fromTable(tbl, "FromNameTest", "broken")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = fromTable(tbl, "FromNameTest", "missing")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func ExampleFromHex3() {
	c, _ := FromHex3("#a3d")
	fmt.Println(c)
	// Output: {170 51 221 255}
}

// Package view is a declarative description of a screen: a tree of typed
// nodes carrying style attributes, produced by components and consumed by
// rendering hosts.
package view

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a node.
type Kind string

const (
	KindView   Kind = "view"
	KindText   Kind = "text"
	KindButton Kind = "button"
	KindImage  Kind = "image"
	KindIcon   Kind = "icon"
	KindList   Kind = "list"
)

// Node is one element of a view tree.
type Node struct {
	Kind     Kind    `json:"kind"`
	Key      string  `json:"key,omitempty"`
	Text     string  `json:"text,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Source   string  `json:"source,omitempty"`
	Action   string  `json:"action,omitempty"`
	Style    Style   `json:"style"`
	Children []*Node `json:"children,omitempty"`
}

// Length is a style length: either logical units or a percentage of the
// parent. It marshals to a JSON number or a "N%" string.
type Length struct {
	Value   float64
	Percent bool
}

// Units returns a length in logical units.
func Units(v float64) *Length { return &Length{Value: v} }

// Percent returns a length relative to the parent.
func Percent(v float64) *Length { return &Length{Value: v, Percent: true} }

func (l Length) String() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (l Length) MarshalJSON() ([]byte, error) {
	if l.Percent {
		return json.Marshal(l.String())
	}
	return json.Marshal(l.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Length) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || !strings.HasSuffix(s, "%") {
			return fmt.Errorf("invalid length %q", s)
		}
		*l = Length{Value: v, Percent: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid length %s: %w", data, err)
	}
	*l = Length{Value: v}
	return nil
}

// Style holds the layout and text attributes of a node. Zero values mean
// "unset" and are omitted from JSON.
type Style struct {
	FlexDirection  string  `json:"flexDirection,omitempty"`
	JustifyContent string  `json:"justifyContent,omitempty"`
	AlignItems     string  `json:"alignItems,omitempty"`
	AlignSelf      string  `json:"alignSelf,omitempty"`
	Flex           float64 `json:"flex,omitempty"`
	Gap            float64 `json:"gap,omitempty"`

	Width       *Length `json:"width,omitempty"`
	Height      *Length `json:"height,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`

	PaddingHorizontal float64 `json:"paddingHorizontal,omitempty"`
	PaddingVertical   float64 `json:"paddingVertical,omitempty"`
	PaddingTop        float64 `json:"paddingTop,omitempty"`
	MarginTop         float64 `json:"marginTop,omitempty"`
	MarginRight       float64 `json:"marginRight,omitempty"`
	MarginLeft        float64 `json:"marginLeft,omitempty"`

	Position string   `json:"position,omitempty"`
	Top      *float64 `json:"top,omitempty"`
	Right    *float64 `json:"right,omitempty"`

	BorderRadius    float64 `json:"borderRadius,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Overflow        string  `json:"overflow,omitempty"`
	Opacity         float64 `json:"opacity,omitempty"`

	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	Color         string  `json:"color,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	TextAlign     string  `json:"textAlign,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
}

// Offset returns a pointer to v for the Top and Right fields, where zero is a
// meaningful value.
func Offset(v float64) *float64 { return &v }

// Square sets width and height to size.
func (s Style) Square(size float64) Style {
	s.Width = Units(size)
	s.Height = Units(size)
	return s
}

// Circle sets a square size and a radius of half of it.
func (s Style) Circle(size float64) Style {
	s = s.Square(size)
	s.BorderRadius = size / 2
	return s
}

// Merge returns s overlaid with every set field of o.
func (s Style) Merge(o Style) Style {
	out := s
	mergeString(&out.FlexDirection, o.FlexDirection)
	mergeString(&out.JustifyContent, o.JustifyContent)
	mergeString(&out.AlignItems, o.AlignItems)
	mergeString(&out.AlignSelf, o.AlignSelf)
	mergeFloat(&out.Flex, o.Flex)
	mergeFloat(&out.Gap, o.Gap)
	if o.Width != nil {
		out.Width = o.Width
	}
	if o.Height != nil {
		out.Height = o.Height
	}
	mergeFloat(&out.AspectRatio, o.AspectRatio)
	mergeFloat(&out.PaddingHorizontal, o.PaddingHorizontal)
	mergeFloat(&out.PaddingVertical, o.PaddingVertical)
	mergeFloat(&out.PaddingTop, o.PaddingTop)
	mergeFloat(&out.MarginTop, o.MarginTop)
	mergeFloat(&out.MarginRight, o.MarginRight)
	mergeFloat(&out.MarginLeft, o.MarginLeft)
	mergeString(&out.Position, o.Position)
	if o.Top != nil {
		out.Top = o.Top
	}
	if o.Right != nil {
		out.Right = o.Right
	}
	mergeFloat(&out.BorderRadius, o.BorderRadius)
	mergeString(&out.BackgroundColor, o.BackgroundColor)
	mergeString(&out.Overflow, o.Overflow)
	mergeFloat(&out.Opacity, o.Opacity)
	mergeString(&out.FontFamily, o.FontFamily)
	mergeFloat(&out.FontSize, o.FontSize)
	mergeString(&out.FontWeight, o.FontWeight)
	mergeString(&out.Color, o.Color)
	mergeFloat(&out.LetterSpacing, o.LetterSpacing)
	mergeString(&out.TextAlign, o.TextAlign)
	mergeFloat(&out.LineHeight, o.LineHeight)
	return out
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

package config

import (
	"fmt"
	"strings"
)

// RenderOptions renders the option table as aligned "key = default"
// lines with comments, for "cardstock config options".
func RenderOptions() string {
	opts := GetConfigOptions()

	width := 0
	for _, o := range opts {
		if len(o.Key) > width {
			width = len(o.Key)
		}
	}

	var b strings.Builder
	for _, o := range opts {
		fmt.Fprintf(&b, "%-*s = %-12v # %s\n", width, o.Key, renderValue(o.Default), o.Comment)
	}
	return b.String()
}

func renderValue(v any) string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return `""`
		}
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

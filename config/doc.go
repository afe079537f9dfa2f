// Package config loads borelog settings from a TOML file.
//
// Every section is optional; missing keys keep their defaults:
//
//	[page]
//	scale = 100
//	header_height = 40
//
//	[page.margins]
//	top = 10
//
//	[[page.columns]]
//	name = "Legend"
//	fraction = 0.3
//
//	[text]
//	line_height = 3.5
//
//	[overflow]
//	entry_gap = 4
//
//	[font]
//	measurer = "standard"
//	name = "Helvetica"
//	size = 8
//
//	[export]
//	format = "csv"
package config

// Package chart reads declarative bar chart definitions and turns them
// into figures.
//
// A definition is a TOML or JSON document:
//
//	title = "Revenue"
//	categories = ["Q1", "Q2", "Q3"]
//
//	[[series]]
//	legend = "2024"
//	values = [4.2, 5.1, -0.8]
//	labels_on_top = true
//
//	[[series.bars]]
//	position = 3
//	value = 6
//	error = 0.5
//	color = "#d62728"
//
// or a spreadsheet whose first column holds the categories and whose other
// columns each hold one series. [Load] picks the decoder by extension and
// [Definition.Figure] validates the result and builds the figure.
package chart

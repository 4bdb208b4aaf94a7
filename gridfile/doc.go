// Package gridfile reads grid scenarios from disk and renders grids and
// paths for people to look at.
//
// Scenario formats (chosen by file extension):
//
//   - .yaml, .yml   YAML document with `grid` (or `map`), `start` and `goal`.
//   - .json, .jsonc JSON document with the same fields; // and /* */ comments are allowed.
//   - .txt, .map    ASCII map: '.' or '0' free, '#' or '1' obstacle, 'S' start, 'G' goal.
//
// A YAML or JSON scenario looks like:
//
//	grid:
//	  - [0, 0, 0]
//	  - [0, 1, 0]
//	start: [0, 0]
//	goal: [1, 2]
//
// Rendering never influences a search; it is presentation only.
package gridfile

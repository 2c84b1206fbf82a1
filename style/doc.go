// Package style loads label effect presets.
//
// A preset is either a YAML document:
//
//	name: arcade
//	fit:
//	  minimum-scale-factor: 0.5
//	  max-size: [200, 40]
//	strokes:
//	  - {width: 4, color: "#000"}
//	  - {width: 2, color: "#fff"}
//	gradient:
//	  colors: ["#f80", "#f00"]
//	inner-shadows:
//	  - {offset: [0, 2], blur: 3, color: "#0008", blend: multiply}
//
// or the same effects written as one line of the effect language:
//
//	stroke 4 #000; stroke 2 #fff; gradient #f80 #f00; inner-shadow 0,2 blur 3 #0008 multiply; fit min 0.5 size 200,40
//
// Both forms produce a validated Style.
package style

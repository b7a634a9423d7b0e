// SPDX-License-Identifier: EPL-2.0

// Package config holds the run configuration of the deinvert command:
// defaults, scrambler presets, YAML loading and validation.
//
// A configuration file only needs the keys it changes:
//
//	preset: 3
//	input:
//	  type: file
//	  file: scrambled.wav
//	output:
//	  type: wav
//	  file: clear.wav
//	logging:
//	  level: debug
package config

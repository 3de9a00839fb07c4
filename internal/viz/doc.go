// Package viz renders nutation series in the terminal: static
// asciigraph plots of an angle over a date range, and an interactive
// bubbletea view that steps through time while charting the angles.
package viz

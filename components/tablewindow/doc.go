// Package tablewindow serves the condensed league-table window shown on
// mobile layouts: three rows centred on the club, with pre-season tables
// listed alphabetically. It mounts on any mux exposing Handle.
package tablewindow

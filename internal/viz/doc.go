// Package viz provides a terminal stage-table browser for saved runs.
//
// The browser is a Bubble Tea model over the seven-column stage report, with
// sparkline summaries of the temperature and energy profiles.
//
// # Key Bindings
//
//	up/down, j/k  - move the stage cursor
//	pgup/pgdown   - page through stages
//	g/G           - jump to first/last stage
//	q             - quit
package viz

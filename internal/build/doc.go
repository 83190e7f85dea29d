// Package build contains procedural geometry generators that expand a
// small parameter set into a plan of actor spawns, then dispatch the
// plan over the bridge connection one spawn_actor command at a time.
//
// Generators are split into a pure planning step and a dispatch step
// so plans can be inspected and tested without an editor attached.
//
// The plugin also serves construct_house, construct_mansion and
// create_aqueduct, which have no generator here yet; they remain
// reachable through the raw send command and keep their extended
// timeout class in the protocol package.
package build

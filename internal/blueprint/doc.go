// Package blueprint wraps the Blueprint-authoring commands of the
// bridge: creating Blueprint classes, adding components and physics,
// editing graph nodes and variables, applying materials, and spawning
// Blueprint actors into the level.
package blueprint

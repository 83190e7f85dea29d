// Package editor wraps the level-editing commands of the bridge:
// querying, spawning, transforming and deleting actors in the current
// level, and opening assets in the editor.
package editor

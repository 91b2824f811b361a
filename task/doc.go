// Package task implements the animated elements of the scene.
//
// Each task is a state machine advanced by Resume: one call performs the
// paint work up to the next suspension point and returns. The scheduler
// calls Resume once per tick, so a task that "waits" N ticks simply returns
// N times without painting. Only Fire ever finishes.
package task

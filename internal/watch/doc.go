// Package watch reruns generation when the content catalog changes on disk.
package watch

// Package generate writes the rendered community-health files under a root.
//
// Every template is rendered before anything touches the filesystem. The
// four output directories are then created parent first, and each file is
// created or truncated and written in full. The first filesystem error stops
// the run; files already written are left in place.
package generate

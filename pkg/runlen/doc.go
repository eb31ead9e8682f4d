// Package runlen contains the longest-run scanning core. It never imports
// cli, app, pipeline, or output; keep it domain-only.
//
// External outputs must not depend on the shapes here — use pkg/api for
// stable wire types (JSON v1).
package runlen

// Package gallery holds the desktop's thumbnail catalog and the image viewer.
//
// Assets live under a root directory: thumbnails/ for the small images and
// images/ or photos/ for full-size ones. Every lookup probes a fixed list of
// extensions once and then settles on not found.
package gallery

// Package render turns downloaded image bytes into colored ASCII art.
//
// Decode sniffs the payload with mimetype and accepts PNG, JPEG, GIF and
// WebP. Render scales the image to a character grid and writes a
// self-contained HTML document.
package render

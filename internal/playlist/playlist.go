// ABOUTME: In-memory playlist with a current index
// ABOUTME: Ordered file paths with next/prev navigation
package playlist

// Playlist is an ordered list of file paths with a cursor
type Playlist struct {
	items []string
	index int
}

// New creates an empty playlist
func New() *Playlist {
	return &Playlist{index: -1}
}

// Add appends a path. The first added item becomes current.
func (p *Playlist) Add(path string) {
	p.items = append(p.items, path)
	if p.index == -1 {
		p.index = 0
	}
}

// Current returns the current path, if any
func (p *Playlist) Current() (string, bool) {
	if p.index >= 0 && p.index < len(p.items) {
		return p.items[p.index], true
	}
	return "", false
}

// Next advances the cursor and returns the new current path
func (p *Playlist) Next() (string, bool) {
	if p.index+1 < len(p.items) {
		p.index++
		return p.items[p.index], true
	}
	return "", false
}

// Prev moves the cursor back and returns the new current path
func (p *Playlist) Prev() (string, bool) {
	if p.index-1 >= 0 {
		p.index--
		return p.items[p.index], true
	}
	return "", false
}

// All returns a copy of the playlist entries
func (p *Playlist) All() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	return len(p.items)
}

// Index returns the cursor position, -1 when empty
func (p *Playlist) Index() int {
	return p.index
}

// seehuhn.de/go/segedit - segmentation mask editing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package segedit

import (
	"fmt"
	"log/slog"
	"slices"
)

// DefaultUndoDepth is a reasonable history depth for interactive editing.
const DefaultUndoDepth = 10

// undoEntry is a snapshot of the pixels of a raster.
type undoEntry struct {
	id            ImageID
	width, height int
	pix           []Label
}

func snapshot(id ImageID, r *Raster) undoEntry {
	return undoEntry{
		id:     id,
		width:  r.width,
		height: r.height,
		pix:    slices.Clone(r.pix),
	}
}

// history is the undo and redo state of one image.
type history struct {
	maxDepth int
	undo     []undoEntry // oldest first
	redo     []undoEntry // oldest first
}

// UndoStore keeps a bounded history of raster snapshots for every image
// for which undo has been enabled. Editing tools call Save immediately
// before each modification, and Undo to return to the most recently saved
// state.
//
// The zero value is ready to use. An UndoStore is not safe for concurrent
// use; callers must serialize access for each image.
type UndoStore struct {
	histories map[ImageID]*history
}

// NewUndoStore returns an empty store.
func NewUndoStore() *UndoStore {
	return &UndoStore{histories: make(map[ImageID]*history)}
}

// Enable turns on undo for the image id, keeping at most maxDepth
// snapshots. If undo is already enabled, the depth is changed and excess
// snapshots are discarded, oldest first. Negative depths are treated as 0.
func (s *UndoStore) Enable(id ImageID, maxDepth int) {
	if s.histories == nil {
		s.histories = make(map[ImageID]*history)
	}
	maxDepth = max(maxDepth, 0)
	h := s.histories[id]
	if h == nil {
		h = &history{}
		s.histories[id] = h
	}
	h.maxDepth = maxDepth
	h.trim(id)
}

// Disable turns off undo for the image id and discards its history.
func (s *UndoStore) Disable(id ImageID) {
	delete(s.histories, id)
}

// IsEnabled reports whether undo is enabled for the image id.
func (s *UndoStore) IsEnabled(id ImageID) bool {
	_, ok := s.histories[id]
	return ok
}

// Save records the current contents of r as the newest snapshot of the
// image id. The redo history is discarded. Save does nothing if undo is
// not enabled for id.
func (s *UndoStore) Save(id ImageID, r *Raster) {
	h := s.histories[id]
	if h == nil {
		return
	}
	clear(h.redo)
	h.redo = h.redo[:0]
	h.undo = append(h.undo, snapshot(id, r))
	h.trim(id)
}

// Undo restores the newest snapshot of the image id into r and removes it
// from the history. The state of r before the call becomes available to
// Redo. If there is no snapshot, ErrNoHistory is returned and r is not
// changed.
//
// Undo panics if r does not have the size of the snapshot: this means that
// the caller passed a different raster than the one it saved.
func (s *UndoStore) Undo(id ImageID, r *Raster) error {
	h := s.histories[id]
	if h == nil || len(h.undo) == 0 {
		return ErrNoHistory
	}
	last := len(h.undo) - 1
	e := h.undo[last]
	checkRestore(e, r)

	h.redo = append(h.redo, snapshot(id, r))
	copy(r.pix, e.pix)
	h.undo[last] = undoEntry{}
	h.undo = h.undo[:last]
	h.trim(id)
	return nil
}

// Redo re-applies the most recently undone change of the image id.
// If nothing has been undone since the last Save, ErrNoHistory is returned
// and r is not changed.
func (s *UndoStore) Redo(id ImageID, r *Raster) error {
	h := s.histories[id]
	if h == nil || len(h.redo) == 0 {
		return ErrNoHistory
	}
	last := len(h.redo) - 1
	e := h.redo[last]
	checkRestore(e, r)

	h.undo = append(h.undo, snapshot(id, r))
	copy(r.pix, e.pix)
	h.redo[last] = undoEntry{}
	h.redo = h.redo[:last]
	h.trim(id)
	return nil
}

// Available reports whether Undo would succeed for the image id.
func (s *UndoStore) Available(id ImageID) bool {
	h := s.histories[id]
	return h != nil && len(h.undo) > 0
}

// RedoAvailable reports whether Redo would succeed for the image id.
func (s *UndoStore) RedoAvailable(id ImageID) bool {
	h := s.histories[id]
	return h != nil && len(h.redo) > 0
}

// Depth returns the number of snapshots available to Undo for the image id.
func (s *UndoStore) Depth(id ImageID) int {
	h := s.histories[id]
	if h == nil {
		return 0
	}
	return len(h.undo)
}

// trim discards the oldest snapshots beyond the maximum depth.
func (h *history) trim(id ImageID) {
	if n := len(h.undo) - h.maxDepth; n > 0 {
		Logger().Debug("undo eviction", slog.Uint64("image", uint64(id)), slog.Int("count", n))
		h.undo = slices.Delete(h.undo, 0, n)
	}
	if n := len(h.redo) - h.maxDepth; n > 0 {
		h.redo = slices.Delete(h.redo, 0, n)
	}
}

func checkRestore(e undoEntry, r *Raster) {
	if e.width == r.width && e.height == r.height {
		return
	}
	msg := fmt.Sprintf("segedit: restoring %dx%d snapshot of image %d into %dx%d raster",
		e.width, e.height, e.id, r.width, r.height)
	Logger().Warn(msg)
	panic(msg)
}

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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// state returns a 4x3 raster with every pixel set to v.
func state(v Label) *Raster {
	r := NewRaster(4, 3)
	r.Fill(v)
	return r
}

func TestUndoRoundTrip(t *testing.T) {
	var s UndoStore // the zero value is usable
	r := state(1)
	s.Enable(r.ID(), 5)

	s.Save(r.ID(), r)
	r.Fill(2)
	r.Set(3, 2, 7)

	if err := s.Undo(r.ID(), r); err != nil {
		t.Fatal(err)
	}
	if !r.Equal(state(1)) {
		t.Error("undo did not restore the saved state")
	}
	if s.Available(r.ID()) {
		t.Error("history not empty after undoing the only snapshot")
	}
	if err := s.Undo(r.ID(), r); !errors.Is(err, ErrNoHistory) {
		t.Errorf("got %v, want ErrNoHistory", err)
	}
}

func TestUndoNoHistory(t *testing.T) {
	s := NewUndoStore()
	r := state(3)

	// not enabled
	s.Save(r.ID(), r)
	if err := s.Undo(r.ID(), r); !errors.Is(err, ErrNoHistory) {
		t.Errorf("disabled: got %v, want ErrNoHistory", err)
	}

	// enabled, but nothing saved
	s.Enable(r.ID(), 3)
	if err := s.Undo(r.ID(), r); !errors.Is(err, ErrNoHistory) {
		t.Errorf("empty: got %v, want ErrNoHistory", err)
	}
	if !r.Equal(state(3)) {
		t.Error("failed undo modified the raster")
	}
}

// TestUndoDepth checks that only the newest snapshots are kept.
func TestUndoDepth(t *testing.T) {
	s := NewUndoStore()
	r := state(1)
	s.Enable(r.ID(), 2)

	for v := Label(1); v <= 3; v++ {
		r.Fill(v)
		s.Save(r.ID(), r)
	}
	r.Fill(4)

	if d := s.Depth(r.ID()); d != 2 {
		t.Fatalf("got depth %d, want 2", d)
	}
	for _, want := range []Label{3, 2} {
		if err := s.Undo(r.ID(), r); err != nil {
			t.Fatal(err)
		}
		if !r.Equal(state(want)) {
			t.Errorf("got %v, want state %d", r.Row(0), want)
		}
	}
	if err := s.Undo(r.ID(), r); !errors.Is(err, ErrNoHistory) {
		t.Errorf("got %v, want ErrNoHistory", err)
	}
}

// TestUndoShrink checks that reducing the depth of an image with history
// evicts the oldest snapshots.
func TestUndoShrink(t *testing.T) {
	s := NewUndoStore()
	r := state(0)
	s.Enable(r.ID(), 10)
	for v := Label(1); v <= 5; v++ {
		r.Fill(v)
		s.Save(r.ID(), r)
	}

	s.Enable(r.ID(), 2)
	if d := s.Depth(r.ID()); d != 2 {
		t.Fatalf("got depth %d, want 2", d)
	}
	if err := s.Undo(r.ID(), r); err != nil {
		t.Fatal(err)
	}
	if !r.Equal(state(5)) {
		t.Error("newest snapshot lost")
	}

	s.Enable(r.ID(), -1)
	if s.Available(r.ID()) {
		t.Error("negative depth kept snapshots")
	}
	s.Save(r.ID(), r)
	if s.Available(r.ID()) {
		t.Error("depth 0 kept a snapshot")
	}
}

func TestUndoDisable(t *testing.T) {
	s := NewUndoStore()
	r := state(1)
	s.Enable(r.ID(), 3)
	s.Save(r.ID(), r)
	s.Disable(r.ID())
	if s.IsEnabled(r.ID()) || s.Available(r.ID()) {
		t.Error("history survived Disable")
	}
	s.Enable(r.ID(), 3)
	if s.Available(r.ID()) {
		t.Error("history survived Disable and Enable")
	}
}

// TestUndoImages checks that histories of different images are separate.
func TestUndoImages(t *testing.T) {
	s := NewUndoStore()
	a, b := state(1), state(2)
	if a.ID() == b.ID() {
		t.Fatal("rasters share an identity")
	}
	s.Enable(a.ID(), 3)
	s.Enable(b.ID(), 3)

	s.Save(a.ID(), a)
	a.Fill(9)
	if s.Available(b.ID()) {
		t.Error("saving image a created history for image b")
	}
	if err := s.Undo(a.ID(), a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(state(1)) || !b.Equal(state(2)) {
		t.Error("undo touched the wrong image")
	}
}

func TestRedo(t *testing.T) {
	s := NewUndoStore()
	r := state(1)
	s.Enable(r.ID(), 5)

	s.Save(r.ID(), r)
	r.Fill(2)
	s.Save(r.ID(), r)
	r.Fill(3)

	if err := s.Redo(r.ID(), r); !errors.Is(err, ErrNoHistory) {
		t.Errorf("redo before undo: got %v, want ErrNoHistory", err)
	}

	for _, want := range []Label{2, 1} {
		if err := s.Undo(r.ID(), r); err != nil {
			t.Fatal(err)
		}
		if !r.Equal(state(want)) {
			t.Errorf("undo: got %v, want state %d", r.Row(0), want)
		}
	}
	for _, want := range []Label{2, 3} {
		if err := s.Redo(r.ID(), r); err != nil {
			t.Fatal(err)
		}
		if !r.Equal(state(want)) {
			t.Errorf("redo: got %v, want state %d", r.Row(0), want)
		}
	}
	if s.RedoAvailable(r.ID()) {
		t.Error("redo history not exhausted")
	}

	// a new edit discards the redo history
	if err := s.Undo(r.ID(), r); err != nil {
		t.Fatal(err)
	}
	s.Save(r.ID(), r)
	r.Fill(8)
	if s.RedoAvailable(r.ID()) {
		t.Error("Save did not discard the redo history")
	}
}

// TestUndoSizeMismatch checks that restoring into a raster of the wrong
// size panics and leaves the history intact.
func TestUndoSizeMismatch(t *testing.T) {
	s := NewUndoStore()
	r := state(1)
	s.Enable(r.ID(), 3)
	s.Save(r.ID(), r)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("undo into a raster of different size did not panic")
			}
		}()
		_ = s.Undo(r.ID(), NewRaster(5, 5))
	}()

	if s.Depth(r.ID()) != 1 {
		t.Error("failed undo consumed the snapshot")
	}
}

// TestUndoLogging checks that evictions are reported to the logger.
func TestUndoLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewUndoStore()
	r := state(1)
	s.Enable(r.ID(), 1)
	s.Save(r.ID(), r)
	s.Save(r.ID(), r)

	if !strings.Contains(buf.String(), "undo eviction") {
		t.Errorf("eviction not logged: %q", buf.String())
	}
}

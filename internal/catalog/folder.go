package catalog

import (
	"fmt"
	"sync/atomic"
)

// Folder is one entry of the fixed folder set.
type Folder struct {
	Key   string `json:"key"   example:"dian_gun"`
	Label string `json:"label" example:"溜冰场"`
}

// FolderSelector owns the fixed folder set and the current selection.
// The selection is a single atomic pointer, so readers never see a value
// outside the set and concurrent switches resolve last-writer-wins.
type FolderSelector struct {
	folders []Folder
	labels  map[string]string
	current atomic.Pointer[string]
}

// NewFolderSelector copies folders and selects initial, which must be one of them.
func NewFolderSelector(folders []Folder, initial string) (*FolderSelector, error) {
	s := &FolderSelector{
		folders: make([]Folder, 0, len(folders)),
		labels:  make(map[string]string, len(folders)),
	}
	for _, f := range folders {
		if _, dup := s.labels[f.Key]; dup {
			return nil, fmt.Errorf("duplicate folder key %q", f.Key)
		}
		s.labels[f.Key] = f.Label
		s.folders = append(s.folders, f)
	}

	if _, ok := s.labels[initial]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFolder, initial)
	}
	s.current.Store(&initial)
	return s, nil
}

// Current returns the selected folder key.
func (s *FolderSelector) Current() string {
	return *s.current.Load()
}

// CurrentLabel returns the selected key and its label from one atomic read.
func (s *FolderSelector) CurrentLabel() (key, label string) {
	key = *s.current.Load()
	return key, s.labels[key]
}

// SwitchTo selects key. Unknown keys return ErrInvalidFolder and leave the
// selection unchanged.
func (s *FolderSelector) SwitchTo(key string) (string, error) {
	if _, ok := s.labels[key]; !ok {
		return s.Current(), ErrInvalidFolder
	}
	s.current.Store(&key)
	return key, nil
}

// Folders returns the folder set in configuration order.
func (s *FolderSelector) Folders() []Folder {
	out := make([]Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

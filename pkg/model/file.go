package model

import "encoding/json"

// FileHandle describes a file selected in a form file input. Only metadata
// travels with the form; contents are uploaded separately.
type FileHandle struct {
	Name        string `json:"name"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"type,omitempty"`
}

type FileList []FileHandle

func (l FileList) Names() []string {
	names := make([]string, 0, len(l))
	for _, f := range l {
		names = append(names, f.Name)
	}
	return names
}

// MarshalJSON renders the list as file names, which is what ends up in
// additionalData.
func (l FileList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Names())
}

func (l FileList) named() bool {
	if len(l) == 0 {
		return false
	}
	for _, f := range l {
		if f.Name == "" {
			return false
		}
	}
	return true
}
